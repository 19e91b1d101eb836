package options

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON   bool
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func AddFormatArg(cmd *cobra.Command, po *OutputOptions) {
	AddOutputArg(cmd, po)
	cmd.Flags().StringVarP(&po.Output, "output", "o", string(printers.FormatText),
		"Output format. One of 'text', 'json', 'yaml' or 'toml'.")
	_ = cmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}

// Format resolves --output, with --json as a shorthand for json.
func (o *OutputOptions) Format() (printers.Format, error) {
	f, err := printers.ParseFormat(o.Output)
	if err != nil {
		return "", err
	}
	if o.JSON && f == printers.FormatText {
		return printers.FormatJSON, nil
	}
	return f, nil
}

// HandleError reports err and swallows it: a failed journal operation is a
// printed message, not a failed process.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	var blocked *journal.IncompleteTasksError
	isBlocked := errors.As(err, &blocked)

	if f, ferr := o.Format(); ferr == nil && f.Structured() {
		view := printers.ErrorView{Error: err.Error()}
		if isBlocked {
			view.Incomplete = printers.NewTaskList(blocked.Tasks).Tasks
		}
		return printers.Encode(color.Output, f, view)
	}

	if isBlocked {
		pp := printers.PrettyPrint{}
		pp.Incomplete(blocked)
		return nil
	}
	pp := printers.PrettyPrint{Out: color.Error}
	pp.Error(err)
	return nil
}
