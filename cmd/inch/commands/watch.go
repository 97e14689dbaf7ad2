package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [file]",
		Short: "Compile a file and recompile on changes under the build context",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			req, err := requestFromFlags(cmd, args[0])
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), req)
		},
	}
	addRequestFlags(cmd)
	return cmd
}
