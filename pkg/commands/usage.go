package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/runner/usage"
)

func addUsage(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Walk through journal and jot from init to delete.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := usage.Usage{}
			return u.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
