package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/finish"
)

func addFinish(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Mark every open task of the current version done.",
		Example: `
jot finish
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

			f := finish.Finish{Clock: s.Clock(), Output: out, Persistence: s.Persistence}
			return oo.HandleError(f.Do(cmd.Context()))
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
