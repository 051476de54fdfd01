package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Inspect and edit the processed task identities",
	}

	cmd.AddCommand(c.newKeysListCmd())
	cmd.AddCommand(c.newKeysForgetCmd())

	return cmd
}

func (c *CLI) newKeysListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print processed identity keys, one per line",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			pending, _ := cmd.Flags().GetBool("pending")
			out := cmd.OutOrStdout()
			for _, k := range c.app.ListKeys(pending) {
				_, _ = fmt.Fprintln(out, k)
			}
		},
	}

	cmd.Flags().BoolP("pending", "p", false, "Only list keys whose runs never completed")

	return cmd
}

func (c *CLI) newKeysForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <key>...",
		Short: "Remove keys so that a redelivery of the same identity runs again",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.ForgetKeys(args...)
		},
	}
}
