package next

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Next advances the journal to the next version.
type Next struct {
	runner.Clock
	runner.Output

	Part journal.Part
	Tag  string

	Persistence store.Persistence
}

func (n *Next) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	if _, err := journal.Next(j, n.Part, journal.NextOptions{Tag: n.Tag, Now: n.Stamp()}); err != nil {
		return err
	}
	if err := n.Persistence.Save(j); err != nil {
		return err
	}
	return n.Status(journal.Summarize(j))
}
