package options

import (
	"github.com/spf13/cobra"
)

// GroupOptions
type GroupOptions struct {
	Group string
}

func AddGroupArgs(cmd *cobra.Command, o *GroupOptions, usage string) {
	cmd.Flags().StringVarP(&o.Group, "group", "g", "", usage)
}
