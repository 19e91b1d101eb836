package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	gro := &options.GroupOptions{}
	oo := &options.OutputOptions{}
	var index int

	cmd := &cobra.Command{
		Use:   "move <index>",
		Short: "Move a task of the current version to another group.",
		Long:  options.Wrap80("Move a task to the group given with -g, or out of its group when -g is left out."),
		Example: `
jot move 3 -g bug
jot move 3
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("requires exactly one index, got %d", len(args))
			}
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			index = i
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

			m := move.Move{Output: out, Index: index, Group: gro.Group, Persistence: s.Persistence}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddGroupArgs(cmd, gro, "Group to move the task to.")
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
