package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner/next"
)

func addNext(topLevel *cobra.Command) {
	to := &options.TagOptions{}
	oo := &options.OutputOptions{}
	var part journal.Part

	cmd := &cobra.Command{
		Use:   "next <major|minor|patch>",
		Short: "Move the journal to its next version.",
		Long: options.Wrap80("Increment the chosen part of the version and reset the parts below it. " +
			"The journal only moves on once every task of the current version is done."),
		Example: `
journal next patch
journal next minor -t "release candidate"
`,
		ValidArgs: journal.Parts(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires one of major, minor or patch")
			}
			p, err := journal.ParsePart(args[0])
			if err != nil {
				return err
			}
			part = p
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

			n := next.Next{
				Clock:       s.Clock(),
				Output:      out,
				Part:        part,
				Tag:         to.Tag,
				Persistence: s.Persistence,
			}
			return oo.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddTagArgs(cmd, to, "Tag for the new version.")
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
