package purge

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Purge drops every task of the current version.
type Purge struct {
	runner.Output

	Persistence store.Persistence
}

func (n *Purge) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	cleared := journal.Clear(j)
	if cleared > 0 {
		if err := n.Persistence.Save(j); err != nil {
			return err
		}
	}
	if n.Structured() {
		return n.Encode(purgeView{Version: j.Current(), Cleared: cleared})
	}
	n.Pretty().Message("Cleared %d task(s) from %s", cleared, j.Current())
	return nil
}

type purgeView struct {
	Version string `json:"version" yaml:"version" toml:"version"`
	Cleared int    `json:"cleared" yaml:"cleared" toml:"cleared"`
}
