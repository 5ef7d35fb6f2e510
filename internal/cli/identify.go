package cli

import (
	"github.com/spf13/cobra"
)

func newIdentifyCmd(opts *rootOptions) *cobra.Command {
	var exe string

	cmd := &cobra.Command{
		Use:   "identify PID",
		Short: "Print profile keys and container context of a process as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pids, err := parsePIDs(args)
			if err != nil {
				return err
			}

			identity, err := opts.identityResolver().Resolve(pids[0], exe)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), identity)
		},
	}

	cmd.Flags().StringVar(&exe, "exe", "", "executable path (defaults to the process exe link)")

	return cmd
}
