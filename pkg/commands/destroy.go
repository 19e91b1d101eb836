package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/destroy"
)

func addDestroy(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the journal in the current directory.",
		Example: `
journal delete
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

			d := destroy.Destroy{Output: out, Persistence: s.Persistence}
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
