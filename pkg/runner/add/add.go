package add

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Add records new tasks against the current version.
type Add struct {
	runner.Clock
	runner.Output

	Actions []string
	Group   string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	added := journal.AddTasks(j, n.Actions, journal.AddOptions{Group: n.Group, Now: n.Stamp()})
	if len(added) > 0 {
		if err := n.Persistence.Save(j); err != nil {
			return err
		}
	}
	return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
}
