package command

import (
	"os"
	"time"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/subosito/gotenv"
)

// ErrAlreadyReported marks a failure the command already printed to the user.
var ErrAlreadyReported = errors.New("failure already reported")

// ExitCode logs err unless it is ErrAlreadyReported and returns the process exit code for it.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	if !errors.Is(err, ErrAlreadyReported) {
		log.Error().Err(err).Msg("Failed to execute root command")
	}

	return 1
}

// NewSubcommandGroup returns a command without own behavior that only groups subCommands.
func NewSubcommandGroup(name string, subCommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name,
		Short: name + " subcommands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(subCommands...)

	return cmd
}

// LoadDotEnv loads the given env files into the environment, files that don't exist are skipped.
// Variables already set in the environment win.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			continue
		}

		if err := gotenv.Load(filename); err != nil {
			return err
		}

		log.Debug().Str("file", filename).Msg("Loaded env file")
	}

	return nil
}

// ConfigureLogger applies cfg to the global zerolog logger.
func ConfigureLogger(cfg config.LoggerServer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(cfg.Level)

	if cfg.PrettyPrintConsole {
		log.Logger = log.Output(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.TimeFormat = "15:04:05"
		}))
	}

	if cfg.LogCaller {
		log.Logger = log.With().Caller().Logger()
	}
}
