package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Accept task deliveries over HTTP and run them",
		Long: `Starts the HTTP listener and the worker pool.

Configuration is read from courier.yaml in the working directory, or from the
file named by COURIER_CONFIG. On SIGINT or SIGTERM the listener stops accepting
deliveries and in-flight runs get server.shutdown_timeout to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context())
		},
	}
}
