package remove

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Remove deletes tasks of the current version.
type Remove struct {
	runner.Output

	Indices []int

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if journal.DeleteTasks(j, n.Indices) > 0 {
		if err := n.Persistence.Save(j); err != nil {
			return err
		}
	}
	return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
}
