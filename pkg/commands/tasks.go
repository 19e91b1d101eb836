package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/list"
)

func addTasks(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks of the journal.",
		Long: options.Wrap80(`List the tasks of every version, or of one version with -v. "." is the ` +
			`current version and ".." the previous one. Indices stay the same when filtering by state.`),
		Example: `
journal tasks
journal tasks -v .
journal tasks -v 0.1.1 --no-done
journal tasks -d --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			out, err := output(oo)
			if err != nil {
				return err
			}
			s, err := load(cmd)
			if err != nil {
				return err
			}

			l := list.List{Output: out, Filter: fo.Filter(), Persistence: s.Persistence}
			return oo.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddFilterArgs(cmd, fo)
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
