package config

import (
	"time"

	"github.com/assettoken/asset-token/internal/util"
	"github.com/kat-co/vala"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnableMetricsMiddleware        bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	LogCaller          bool
	PrettyPrintConsole bool
}

type ManagementServer struct {
	LivenessTimeout  time.Duration
	ReadinessTimeout time.Duration
	// ProbeBaseURL is where `app probe` sends its requests to.
	ProbeBaseURL string
}

// Chain holds everything the gateway needs to talk to the token contract.
type Chain struct {
	RPCURLs             []string
	ContractAddress     string
	MinterPrivateKey    string `json:"-"`
	MinterSeed          string `json:"-"`
	MinterAccountIndex  uint32
	GasLimit            uint64
	ReceiptPollInterval time.Duration
	ReceiptTimeout      time.Duration
	// BlockBatchSize limits the block range of one eth_getLogs call of GET /historical.
	BlockBatchSize uint64
}

// Client configures the HTTP client used by the web console and the token CLI commands.
type Client struct {
	BaseURL string
	// Timeout of a single backend call, 0 disables it.
	Timeout time.Duration
}

type Web struct {
	ListenAddress string
	Debug         bool
}

// Deploy holds the constructor arguments of the AssetToken contract.
type Deploy struct {
	BytecodeFile  string
	Name          string
	Symbol        string
	InitialSupply string
}

type I18n struct {
	DefaultLanguage language.Tag
}

type Server struct {
	Echo       EchoServer
	Logger     LoggerServer
	Management ManagementServer
	Chain      Chain
	Client     Client
	Web        Web
	Deploy     Deploy
	I18n       I18n
}

const (
	DefaultGatewayListenAddress = ":5000"
	DefaultBackendBaseURL       = "http://localhost:5000"
	DefaultRPCURL               = "http://127.0.0.1:8545"

	DefaultTokenName          = "AssetToken"
	DefaultTokenSymbol        = "AST"
	DefaultTokenInitialSupply = "1000000"
)

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env` file is loaded by the root command before this is called.

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", DefaultGatewayListenAddress),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableMetricsMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
		},
		Logger: LoggerServer{
			Level:              parseLevel(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.InfoLevel.String()), zerolog.InfoLevel),
			RequestLevel:       parseLevel(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String()), zerolog.DebugLevel),
			LogCaller:          util.GetEnvAsBool("SERVER_LOGGER_LOG_CALLER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Management: ManagementServer{
			LivenessTimeout:  util.GetEnvAsDuration("SERVER_MANAGEMENT_LIVENESS_TIMEOUT", 5*time.Second),
			ReadinessTimeout: util.GetEnvAsDuration("SERVER_MANAGEMENT_READINESS_TIMEOUT", 4*time.Second),
			ProbeBaseURL:     util.GetEnv("SERVER_MANAGEMENT_PROBE_BASE_URL", DefaultBackendBaseURL),
		},
		Chain: Chain{
			RPCURLs:             util.GetEnvAsStringArr("SERVER_CHAIN_RPC_URLS", []string{DefaultRPCURL}),
			ContractAddress:     util.GetEnv("SERVER_CHAIN_CONTRACT_ADDRESS", ""),
			MinterPrivateKey:    util.GetEnv("SERVER_CHAIN_MINTER_PRIVATE_KEY", ""),
			MinterSeed:          util.GetEnv("SERVER_CHAIN_MINTER_SEED", ""),
			MinterAccountIndex:  util.GetEnvAsUint32("SERVER_CHAIN_MINTER_ACCOUNT_INDEX", 0),
			GasLimit:            uint64(util.GetEnvAsInt("SERVER_CHAIN_GAS_LIMIT", 0)), //nolint:gosec // negative values are rejected by the node
			ReceiptPollInterval: util.GetEnvAsDuration("SERVER_CHAIN_RECEIPT_POLL_INTERVAL", time.Second),
			ReceiptTimeout:      util.GetEnvAsDuration("SERVER_CHAIN_RECEIPT_TIMEOUT", 2*time.Minute),
			BlockBatchSize:      uint64(util.GetEnvAsUint32("SERVER_CHAIN_BLOCK_BATCH_SIZE", 2000)),
		},
		Client: Client{
			BaseURL: util.GetEnv("TOKEN_BACKEND_URL", DefaultBackendBaseURL),
			Timeout: util.GetEnvAsDuration("TOKEN_CLIENT_TIMEOUT", 0),
		},
		Web: Web{
			ListenAddress: util.GetEnv("WEB_LISTEN_ADDRESS", ":3000"),
			Debug:         util.GetEnvAsBool("WEB_DEBUG", false),
		},
		Deploy: Deploy{
			BytecodeFile:  util.GetEnv("DEPLOY_BYTECODE_FILE", "build/AssetToken.bin"),
			Name:          util.GetEnv("DEPLOY_TOKEN_NAME", DefaultTokenName),
			Symbol:        util.GetEnv("DEPLOY_TOKEN_SYMBOL", DefaultTokenSymbol),
			InitialSupply: util.GetEnv("DEPLOY_TOKEN_INITIAL_SUPPLY", DefaultTokenInitialSupply),
		},
		I18n: I18n{
			DefaultLanguage: parseLanguage(util.GetEnv("SERVER_I18N_DEFAULT_LANGUAGE", "en"), language.English),
		},
	}
}

// ValidateGateway checks the settings the gateway cannot start without.
func (s Server) ValidateGateway() error {
	return vala.BeginValidation().Validate(
		vala.GreaterThan(len(s.Chain.RPCURLs), 0, "SERVER_CHAIN_RPC_URLS"),
		vala.StringNotEmpty(s.Chain.ContractAddress, "SERVER_CHAIN_CONTRACT_ADDRESS"),
		hasMinterKey(s.Chain),
	).Check()
}

func hasMinterKey(c Chain) vala.Checker {
	return func() (bool, string) {
		if len(c.MinterPrivateKey) > 0 || len(c.MinterSeed) > 0 {
			return true, ""
		}
		return false, "one of SERVER_CHAIN_MINTER_PRIVATE_KEY or SERVER_CHAIN_MINTER_SEED is required"
	}
}

func parseLevel(s string, fallback zerolog.Level) zerolog.Level {
	l, err := zerolog.ParseLevel(s)
	if err != nil {
		return fallback
	}

	return l
}

func parseLanguage(s string, fallback language.Tag) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return fallback
	}

	return tag
}
