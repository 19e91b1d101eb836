package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/initialize"
)

func addInit(topLevel *cobra.Command) {
	io := &options.InitOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a journal in the current directory.",
		Long: options.Wrap80("Create .journal.json in the current directory. The name defaults to the " +
			"name of the directory. An existing journal is only replaced with --overwrite."),
		Example: `
journal init
journal init "my project" -v 0.1.0 -t "initial release"
journal init -o
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("expected at most one name")
			}
			if len(args) == 1 {
				io.Name = args[0]
			}
			return nil
		},
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

			i := initialize.Init{
				Clock:       s.Clock(),
				Output:      out,
				Name:        io.Name,
				Version:     io.Version,
				Tag:         io.Tag,
				Overwrite:   io.Overwrite,
				Persistence: s.Persistence,
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	options.AddInitArgs(cmd, io)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
