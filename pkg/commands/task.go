package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/jot/pkg/commands/options"
	"tableflip.dev/jot/pkg/runner/add"
)

func addTask(topLevel *cobra.Command) {
	var action string
	gro := &options.GroupOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "task <action>",
		Short: "Add a task to the current version.",
		Example: `
jot task "+forced upgrade" -g feature
jot task write the changelog
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task")
			}
			action = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runAdd(cmd, oo, []string{action}, gro.Group)
		},
	}

	options.AddGroupArgs(cmd, gro, "Group of the task.")
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addTaskList(topLevel *cobra.Command) {
	gro := &options.GroupOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "tasks <action>...",
		Short: "Add several tasks to the current version, one per argument.",
		Example: `
jot tasks "+group movement" "+version movement" -g feature
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runAdd(cmd, oo, args, gro.Group)
		},
	}

	options.AddGroupArgs(cmd, gro, "Group of the tasks.")
	options.AddFormatArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, oo *options.OutputOptions, actions []string, group string) error {
	out, err := output(oo)
	if err != nil {
		return err
	}
	s, err := load(cmd)
	if err != nil {
		return err
	}

	a := add.Add{
		Clock:       s.Clock(),
		Output:      out,
		Actions:     actions,
		Group:       group,
		Persistence: s.Persistence,
	}
	return oo.HandleError(a.Do(cmd.Context()))
}
