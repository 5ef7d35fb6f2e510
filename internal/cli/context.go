package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/kubescape/procidentity/pkg/containercontext"
	"github.com/spf13/cobra"
)

type pidContext struct {
	PID int `json:"pid"`
	containercontext.ContainerContext
}

func newContextCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "context PID...",
		Short: "Print the container context of processes as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pids, err := parsePIDs(args)
			if err != nil {
				return err
			}

			contexts, err := opts.contextResolver().ProcessContainerContexts(cmd.Context(), pids)
			if err != nil {
				return err
			}

			out := make([]pidContext, 0, len(contexts))
			for pid, cc := range contexts {
				out = append(out, pidContext{PID: pid, ContainerContext: cc})
			}
			sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

func parsePIDs(args []string) ([]int, error) {
	pids := make([]int, 0, len(args))
	for _, arg := range args {
		pid, err := strconv.Atoi(arg)
		if err != nil || pid <= 0 {
			return nil, fmt.Errorf("invalid pid %q", arg)
		}
		pids = append(pids, pid)
	}
	return pids, nil
}
