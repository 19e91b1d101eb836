package detail

import (
	"context"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Detail prints selected fields of tasks of the current version.
type Detail struct {
	runner.Output

	Indices []int
	Options journal.DetailOptions

	Persistence store.Persistence
}

func (n *Detail) Do(ctx context.Context) error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	details := journal.Details(j, n.Indices, n.Options)
	if n.Structured() {
		return n.Encode(printers.NewDetailList(details))
	}
	if len(details) == 0 {
		n.Pretty().Tasks(nil)
		return nil
	}
	n.Pretty().Details(details)
	return nil
}
