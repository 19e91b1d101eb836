package list

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// List prints the tasks that pass Filter.
type List struct {
	runner.Output

	Filter journal.TaskFilter

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	return n.Tasks(journal.Tasks(j, n.Filter))
}
