package options

import (
	"github.com/spf13/cobra"
)

// InitOptions
type InitOptions struct {
	Name      string
	Version   string
	Overwrite bool
	TagOptions
}

func AddInitArgs(cmd *cobra.Command, o *InitOptions) {
	cmd.Flags().StringVarP(&o.Version, "version", "v", "",
		"Initial version of the journal, defaults to 0.0.0.")
	cmd.Flags().BoolVarP(&o.Overwrite, "overwrite", "o", false,
		"Overwrite an existing journal.")
	AddTagArgs(cmd, &o.TagOptions, "Tag for the initial version.")
}
