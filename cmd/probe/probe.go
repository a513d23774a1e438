package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/assettoken/asset-token/internal/config"
	"github.com/assettoken/asset-token/internal/util/command"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	verboseFlag string = "verbose"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
		newReadiness(),
	)
}

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Runs liveness probes",
		Long: `Checks that the gateway process answers on /-/healthy.

Exits with a non-zero code on failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			return runProbe(cmd, cfg.Management.ProbeBaseURL, "/-/healthy", cfg.Management.LivenessTimeout)
		},
	}
	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Runs readiness probes",
		Long: `Checks that the gateway is fully initialized and its chain node is reachable (/-/ready).

Exits with a non-zero code on failure.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()
			return runProbe(cmd, cfg.Management.ProbeBaseURL, "/-/ready", cfg.Management.ReadinessTimeout)
		},
	}
	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runProbe(cmd *cobra.Command, baseURL string, path string, timeout time.Duration) error {
	verbose, err := cmd.Flags().GetBool(verboseFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	status, body, err := probe(ctx, strings.TrimSuffix(baseURL, "/")+path)
	if verbose {
		fmt.Fprintf(cmd.OutOrStdout(), "GET %s%s: %d %s\n", baseURL, path, status, body)
	}
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		return errors.Errorf("probe %s failed with status %d: %s", path, status, body)
	}

	return nil
}

func probe(ctx context.Context, url string) (int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, "", errors.Wrap(err, "failed to create probe request")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", errors.Wrap(err, "probe request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1024))
	if err != nil {
		return res.StatusCode, "", errors.Wrap(err, "failed to read probe response")
	}

	return res.StatusCode, strings.TrimSpace(string(body)), nil
}
