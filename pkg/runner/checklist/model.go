package checklist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/jot/pkg/journal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	tagStyle    = lipgloss.NewStyle().Italic(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	openStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	groupStyle  = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

const help = "↑/k up • ↓/j down • space toggle • f finish all • q/enter save • esc discard"

// Model is a checklist over the tasks of the current version. Toggles are
// applied to the journal it was built with; the caller decides whether to
// save it once the program ends.
type Model struct {
	j      *journal.Journal
	stamp  func() string
	cursor int

	changed bool
	save    bool
	done    bool
}

// NewModel builds a checklist for j. stamp produces completion timestamps.
func NewModel(j *journal.Journal, stamp func() string) *Model {
	return &Model{j: j, stamp: stamp}
}

// Changed reports whether any task was toggled.
func (m *Model) Changed() bool { return m.changed }

// Save reports whether the checklist was left with save.
func (m *Model) Save() bool { return m.save }

// Cursor is the 0-based position of the highlighted task.
func (m *Model) Cursor() int { return m.cursor }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.j.CurrentTasks())
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case " ", "space", "x":
		m.toggle()
	case "f":
		if journal.Finish(m.j, m.stamp()) > 0 {
			m.changed = true
		}
	case "q", "enter":
		m.save = true
		m.done = true
		return m, tea.Quit
	case "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) toggle() {
	tasks := m.j.CurrentTasks()
	if m.cursor >= len(tasks) {
		return
	}
	index := []int{m.cursor + 1}
	if tasks[m.cursor].IsDone() {
		journal.Uncheck(m.j, index)
	} else {
		journal.Check(m.j, index, m.stamp())
	}
	m.changed = true
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", m.j.Name, m.j.Current())))
	if m.j.Tag != "" {
		b.WriteString(" " + tagStyle.Render(m.j.Tag))
	}
	b.WriteString("\n\n")

	tasks := m.j.CurrentTasks()
	if len(tasks) == 0 {
		b.WriteString(groupStyle.Render("no tasks"))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark, style := "[ ]", openStyle
		if t.IsDone() {
			mark, style = "[✓]", doneStyle
		}
		line := fmt.Sprintf("%s%d %s %s", cursor, i+1, mark, style.Render(t.Action))
		if t.Group != "" {
			line += " " + groupStyle.Render("("+t.Group+")")
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")
	return b.String()
}
