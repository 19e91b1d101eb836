package move

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Move puts a task of the current version into Group, or takes it out of
// its group when Group is empty.
type Move struct {
	runner.Output

	Index int
	Group string

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if !journal.Move(j, n.Index, n.Group) {
		return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
	}
	if err := n.Persistence.Save(j); err != nil {
		return err
	}

	details := journal.Details(j, []int{n.Index}, journal.DetailOptions{Group: true})
	if n.Structured() {
		return n.Encode(printers.NewDetailList(details))
	}
	n.Pretty().Details(details)
	return nil
}
