// Package checklist runs an interactive checklist over the current version's
// tasks.
package checklist

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/logging"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store"
)

// ErrNotTerminal is returned when the checklist has no terminal to draw on.
var ErrNotTerminal = errors.New("jot ui needs an interactive terminal")

type Checklist struct {
	runner.Clock
	runner.Output

	// In and Terminal default to os.Stdin and os.Stdout.
	In       io.Reader
	Terminal *os.File

	Persistence store.Persistence
	Logger      *log.Logger
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (n *Checklist) Do(ctx context.Context) error {
	term := n.Terminal
	if term == nil {
		term = os.Stdout
	}
	if !IsTerminal(term) {
		return ErrNotTerminal
	}
	logger := n.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	j, err := n.Persistence.Load()
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(term)}
	if n.In != nil {
		opts = append(opts, tea.WithInput(n.In))
	}
	final, err := tea.NewProgram(NewModel(j, n.Stamp), opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	m, ok := final.(*Model)
	if !ok || !m.Save() || !m.Changed() {
		logger.Debug("checklist closed without changes to save")
		return nil
	}
	if err := n.Persistence.Save(j); err != nil {
		return err
	}
	return n.Tasks(journal.Tasks(j, journal.TaskFilter{Version: "."}))
}
