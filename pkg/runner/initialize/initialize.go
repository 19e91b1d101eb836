package initialize

import (
	"context"
	"fmt"
	"path/filepath"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// Init writes a new journal.
type Init struct {
	runner.Clock
	runner.Output

	// Name defaults to the name of the directory holding the journal.
	Name      string
	Version   string
	Tag       string
	Overwrite bool

	Persistence store.Persistence
}

func (n *Init) Do(ctx context.Context) error {
	if n.Persistence.Exists() && !n.Overwrite {
		return fmt.Errorf("%w at %s, pass --overwrite to replace it", store.ErrExists, n.Persistence.Path())
	}

	name := n.Name
	if name == "" {
		name = DefaultName(n.Persistence.Path())
	}

	j, err := journal.New(name, journal.InitOptions{
		Version: n.Version,
		Tag:     n.Tag,
		Now:     n.Stamp(),
	})
	if err != nil {
		return err
	}
	if err := n.Persistence.Save(j); err != nil {
		return err
	}
	return n.Status(journal.Summarize(j))
}

// DefaultName is the base name of the directory holding path.
func DefaultName(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.Base(filepath.Dir(abs))
}
