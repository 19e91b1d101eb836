package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/revert"
)

func addRevert(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "revert",
		Short: "Undo the last journal next.",
		Example: `
journal revert
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

			r := revert.Revert{Output: out, Persistence: s.Persistence}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
