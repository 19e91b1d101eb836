package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/check"
)

func addCheck(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "check <index>...",
		Short: "Mark tasks of the current version done.",
		Long: options.Wrap80("Mark tasks done by their 1-based index in the current version. " +
			"Negative indices count from the end and need a -- in front of them."),
		Example: `
jot check 2
jot check 1 3
jot check -- -1
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCheck(cmd, oo, args, true)
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addUncheck(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "uncheck <index>...",
		Short: "Mark done tasks of the current version open again.",
		Example: `
jot uncheck 2
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runCheck(cmd, oo, args, false)
		},
	}

	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, oo *options.OutputOptions, args []string, checked bool) error {
	out, err := output(oo)
	if err != nil {
		return err
	}
	s, err := load(cmd)
	if err != nil {
		return err
	}

	c := check.Check{
		Clock:       s.Clock(),
		Output:      out,
		Indices:     options.ParseIndices(args),
		Checked:     checked,
		Persistence: s.Persistence,
	}
	return oo.HandleError(c.Do(cmd.Context()))
}
