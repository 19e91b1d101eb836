package revert

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Revert undoes the last version advance.
type Revert struct {
	runner.Output

	Persistence store.Persistence
}

func (n *Revert) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	journal.Revert(j)
	if err := n.Persistence.Save(j); err != nil {
		return err
	}

	if n.Structured() {
		return n.Status(journal.Summarize(j))
	}
	pp := n.Pretty()
	pp.Version(j.Current())
	pp.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
	return nil
}
