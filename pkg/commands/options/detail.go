package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/journal"
)

// DetailOptions
type DetailOptions struct {
	journal.DetailOptions
}

func AddDetailArgs(cmd *cobra.Command, o *DetailOptions) {
	cmd.Flags().BoolVarP(&o.Group, "group", "g", false,
		"Group of the given task.")
	cmd.Flags().BoolVarP(&o.Created, "creation", "c", false,
		"Time of creation of the given task.")
	cmd.Flags().BoolVarP(&o.Version, "version", "v", false,
		"Version of the given task.")
	cmd.Flags().BoolVarP(&o.State, "state", "s", false,
		"Time of completion, or false, for the given task.")
}
