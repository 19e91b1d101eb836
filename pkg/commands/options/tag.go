package options

import (
	"github.com/spf13/cobra"
)

// TagOptions
type TagOptions struct {
	Tag string
}

func AddTagArgs(cmd *cobra.Command, o *TagOptions, usage string) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "", usage)
}
