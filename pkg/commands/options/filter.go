package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/journal"
)

// FilterOptions
type FilterOptions struct {
	Version string
	Done    bool
	NoDone  bool
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Version, "version", "v", "",
		`Which version of tasks to get; "." is the current and ".." the previous version.`)
	cmd.Flags().BoolVarP(&o.Done, "done", "d", false,
		"Get only completed tasks.")
	cmd.Flags().BoolVar(&o.NoDone, "no-done", false,
		"Get only incomplete tasks.")
	cmd.MarkFlagsMutuallyExclusive("done", "no-done")
}

// Filter converts the flags into a journal.TaskFilter.
func (o *FilterOptions) Filter() journal.TaskFilter {
	f := journal.TaskFilter{Version: o.Version}
	switch {
	case o.Done:
		done := true
		f.Done = &done
	case o.NoDone:
		done := false
		f.Done = &done
	}
	return f
}
