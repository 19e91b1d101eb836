package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "delete <index>...",
		Short: "Delete tasks of the current version.",
		Long: options.Wrap80("Delete tasks by their 1-based index in the current version. All indices " +
			"refer to the list as it was before anything was deleted."),
		Example: `
jot delete 3
jot delete 1 2
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			out, err := output(oo)
			if err != nil {
				return err
			}
			s, err := load(cmd)
			if err != nil {
				return err
			}

			r := remove.Remove{Output: out, Indices: options.ParseIndices(args), Persistence: s.Persistence}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
