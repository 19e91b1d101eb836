package checklist

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/runner/runnertest"
)

func keys(m *Model, ks ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range ks {
		_, cmd = m.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sample(t *testing.T) *journal.Journal {
	t.Helper()
	return runnertest.Journal(t).Journal()
}

func TestNavigate(t *testing.T) {
	m := NewModel(sample(t), func() string { return "now" })

	keys(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Cursor() != 0 {
		t.Fatalf("cursor should stay at the top, got %d", m.Cursor())
	}
	keys(m, runes("j"), tea.KeyMsg{Type: tea.KeyDown}, runes("j"))
	if m.Cursor() != 2 {
		t.Fatalf("cursor should stop at the last task, got %d", m.Cursor())
	}
	keys(m, runes("k"))
	if m.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", m.Cursor())
	}
}

func TestToggle(t *testing.T) {
	j := sample(t)
	m := NewModel(j, func() string { return "now" })

	keys(m, tea.KeyMsg{Type: tea.KeySpace})
	if j.CurrentTasks()[0].Done != "now" {
		t.Fatalf("expected task 1 done, got %+v", j.CurrentTasks()[0])
	}
	keys(m, runes("j"), runes(" "))
	if j.CurrentTasks()[1].IsDone() {
		t.Fatalf("expected task 2 open again")
	}
	if !m.Changed() {
		t.Fatalf("expected the model to report changes")
	}
}

func TestFinishAndSave(t *testing.T) {
	j := sample(t)
	m := NewModel(j, func() string { return "now" })

	keys(m, runes("f"))
	for i, task := range j.CurrentTasks() {
		if !task.IsDone() {
			t.Fatalf("task %d still open", i+1)
		}
	}

	cmd := keys(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected a quit message")
	}
	if !m.Save() {
		t.Fatalf("enter should save")
	}
	if m.View() != "" {
		t.Fatalf("view should be empty after quitting")
	}
}

func TestDiscard(t *testing.T) {
	m := NewModel(sample(t), func() string { return "now" })
	keys(m, runes(" "), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Save() {
		t.Fatalf("esc should discard")
	}
}

func TestView(t *testing.T) {
	m := NewModel(sample(t), func() string { return "now" })
	keys(m, runes("j"))
	view := m.View()
	for _, want := range []string{"usage 0.1.1", "beta", "1 [ ] +forced upgrade", "> 2 [✓] +group movement", "(feature)", "space toggle"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	empty, _ := journal.New("empty", journal.InitOptions{})
	if !strings.Contains(NewModel(empty, nil).View(), "no tasks") {
		t.Fatalf("expected an empty checklist")
	}
}

func TestNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("temp: %v", err)
	}
	defer f.Close()

	mem := runnertest.Journal(t)
	n := &Checklist{Output: runner.Output{Out: &bytes.Buffer{}}, Terminal: f, Persistence: mem}
	if err := n.Do(context.Background()); !errors.Is(err, ErrNotTerminal) {
		t.Fatalf("expected ErrNotTerminal, got %v", err)
	}
}
