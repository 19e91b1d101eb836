package status

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/logging"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
	"tableflip.dev/jot/pkg/timeutil"
)

// Status prints the summary of the current version, and with Watch keeps
// printing it every time the journal changes until ctx is done.
type Status struct {
	runner.Clock
	runner.Output

	Watch bool

	Persistence store.Persistence
	Logger      *log.Logger
}

func (n *Status) Do(ctx context.Context) error {
	if !n.Watch {
		return n.render()
	}

	logger := n.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	pp := n.Pretty()
	if err := n.render(); err != nil {
		pp.Error(err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("journal changed", "event", ev.Type, "path", n.Persistence.Path())
			if !n.Structured() {
				pp.NewLine()
			}
			if ev.Type == store.EventRemoved {
				pp.Message("%s was removed", n.Persistence.Path())
				continue
			}
			if err := n.render(); err != nil {
				pp.Error(err)
			}
		}
	}
}

func (n *Status) render() error {
	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	sum := journal.Summarize(j)
	if err := n.Status(sum); err != nil || n.Structured() || sum.LastBuild == "" {
		return err
	}

	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	age, err := timeutil.Since(sum.LastBuild, n.Layout, now())
	if err != nil {
		n.Pretty().Message("Last build: %s", sum.LastBuild)
		return nil
	}
	n.Pretty().Message("Last build: %s (%s ago)", sum.LastBuild, timeutil.FormatAge(age))
	return nil
}
