package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	errors "github.com/Laisky/errors/v2"
	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/spf13/cobra"

	"github.com/Laisky/video-search/library/askapi"
)

const defaultHealthTimeout = 5 * time.Second

var healthCMD = &cobra.Command{
	Use:   "health",
	Short: "check the question-answering API",
	Long:  `Call GET /health of the question-answering API, fail unless it reports healthy.`,
	Args:  gcmd.NoExtraArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout, err := apiTimeout()
		if err != nil {
			return err
		}
		if timeout == 0 {
			timeout = defaultHealthTimeout
		}

		client, err := newClient(askapi.WithTimeout(timeout))
		if err != nil {
			return err
		}

		return checkHealth(cmd.Context(), cmd.OutOrStdout(), client)
	},
}

func init() {
	rootCMD.AddCommand(healthCMD)
}

type healthChecker interface {
	BaseURL() string
	Health(ctx context.Context) (*askapi.HealthResponse, error)
}

// checkHealth probes the backend and prints its status
func checkHealth(ctx context.Context, w io.Writer, client healthChecker) error {
	resp, err := client.Health(ctx)
	if err != nil {
		return errors.Wrapf(err, "probe %s", client.BaseURL())
	}

	if _, err = fmt.Fprintf(w, "%s: %s\n", client.BaseURL(), resp.Status); err != nil {
		return errors.Wrap(err, "write output")
	}
	if !resp.Healthy() {
		return errors.Errorf("api %s is %q", client.BaseURL(), resp.Status)
	}

	return nil
}
