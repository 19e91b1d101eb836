package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/checklist"
)

func addUI(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Check off tasks of the current version interactively.",
		Long: options.Wrap80("Open a checklist of the current version's tasks. Use up and down (or k and j) " +
			"to move, space to toggle, f to finish everything, q or enter to save and esc to leave without saving."),
		Example: `
jot ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := load(cmd)
			if err != nil {
				return err
			}

			c := checklist.Checklist{
				Clock:       s.Clock(),
				Persistence: s.Persistence,
				Logger:      s.Logger,
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
