package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/detail"
)

func addDetail(topLevel *cobra.Command) {
	do := &options.DetailOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "status <index>...",
		Short: "Show details of tasks of the current version.",
		Long:  options.Wrap80("Show the group, creation time, version and state of tasks. With any of -g, -c, -v or -s only those fields are shown."),
		Example: `
jot status 1 2
jot status 2 -s
jot status 1 -g -c --json
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

			d := detail.Detail{
				Output:      out,
				Indices:     options.ParseIndices(args),
				Options:     do.DetailOptions,
				Persistence: s.Persistence,
			}
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}

	options.AddDetailArgs(cmd, do)
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
