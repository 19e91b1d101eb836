package finish

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Finish marks every task of the current version done.
type Finish struct {
	runner.Clock
	runner.Output

	Persistence store.Persistence
}

func (n *Finish) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if journal.Finish(j, n.Stamp()) > 0 {
		if err := n.Persistence.Save(j); err != nil {
			return err
		}
	}
	return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
}
