package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	wo := &options.WatchOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current version, its tag and its progress.",
		Example: `
journal status
journal status --watch
journal status -o yaml
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

			st := status.Status{
				Clock:       s.Clock(),
				Output:      out,
				Watch:       wo.Watch,
				Persistence: s.Persistence,
				Logger:      s.Logger,
			}
			return oo.HandleError(st.Do(cmd.Context()))
		},
	}

	options.AddWatchArgs(cmd, wo)
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
