package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/purge"
)

func addClear(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every task of the current version.",
		Example: `
journal clear
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

			p := purge.Purge{Output: out, Persistence: s.Persistence}
			return oo.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
