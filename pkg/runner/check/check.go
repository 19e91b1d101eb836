package check

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Check marks tasks of the current version done, or with Checked false,
// not done.
type Check struct {
	runner.Clock
	runner.Output

	Indices []int
	Checked bool

	Persistence store.Persistence
}

func (n *Check) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	var changed int
	if n.Checked {
		changed = journal.Check(j, n.Indices, n.Stamp())
	} else {
		changed = journal.Uncheck(j, n.Indices)
	}
	if changed > 0 {
		if err := n.Persistence.Save(j); err != nil {
			return err
		}
	}
	return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
}
