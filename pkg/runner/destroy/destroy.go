package destroy

import (
	"context"

	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Destroy removes the journal document.
type Destroy struct {
	runner.Output

	Persistence store.Persistence
}

func (n *Destroy) Do(ctx context.Context) error {
	if err := n.Persistence.Delete(); err != nil {
		return err
	}
	if n.Structured() {
		return n.Encode(destroyView{Deleted: n.Persistence.Path()})
	}
	n.Pretty().Message("Deleted %s", n.Persistence.Path())
	return nil
}

type destroyView struct {
	Deleted string `json:"deleted" yaml:"deleted" toml:"deleted"`
}
