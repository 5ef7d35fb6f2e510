package cli

import (
	"fmt"

	"github.com/kubescape/procidentity/pkg/profilekey"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newKeyCmd(_ *rootOptions) *cobra.Command {
	var containerID string

	cmd := &cobra.Command{
		Use:   "key PATH",
		Short: "Print the profile key of an executable",
		Long: `Print the profile key of an executable.

Without --container-id the key is device<<32|inode of the file. With a container id
the key is scoped to that container.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := profilekey.NewCalculator(afero.NewOsFs()).CalculateScopedProfileKey(args[0], containerID)
			if err != nil {
				return fmt.Errorf("profile key: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}

	cmd.Flags().StringVar(&containerID, "container-id", "", "scope the key to this container id")

	return cmd
}
