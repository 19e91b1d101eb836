package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/jot/pkg/journal"
)

const (
	checkMark = "✓"
	noTasks   = "no tasks"
)

// PrettyPrint renders journal state for humans.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

// Message prints a plain informational line.
func (pp *PrettyPrint) Message(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}

// Error prints a failure the command recovered from.
func (pp *PrettyPrint) Error(err error) {
	_, _ = color.New(color.FgRed).Fprintln(pp.out(), err.Error())
}

// Version prints a version string the way status does.
func (pp *PrettyPrint) Version(v string) {
	_, _ = color.New(color.Bold, color.FgBlue).Fprintln(pp.out(), v)
}

// TaskLine formats "1 [✓] action", green when done and red otherwise.
func TaskLine(it journal.IndexedTask) string {
	mark := " "
	c := color.New(color.FgRed)
	if it.Task.IsDone() {
		mark = checkMark
		c = color.New(color.FgGreen)
	}
	return fmt.Sprintf("%d [%s] %s", it.Index, mark, c.Sprint(it.Task.Action))
}

// Tasks prints one line per task.
func (pp *PrettyPrint) Tasks(tasks []journal.IndexedTask) {
	if len(tasks) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(pp.out(), noTasks)
		return
	}
	for _, it := range tasks {
		_, _ = fmt.Fprintln(pp.out(), TaskLine(it))
	}
}

// Incomplete explains a refused version advance.
func (pp *PrettyPrint) Incomplete(err *journal.IncompleteTasksError) {
	_, _ = color.New(color.FgRed, color.Bold).Fprintln(pp.out(), "No upgrade with incomplete tasks!")
	pp.NewLine()
	pp.Tasks(err.Tasks)
}

// Status prints the version, tag and task counts of the current version.
func (pp *PrettyPrint) Status(s journal.Summary) {
	pp.Version(s.Version)
	if s.Tag != "" {
		_, _ = color.New(color.Italic).Fprintln(pp.out(), s.Tag)
	}

	_, _ = fmt.Fprintf(pp.out(), "Total tasks: %d\n", s.Total)
	if s.Total == 0 {
		return
	}
	_, _ = fmt.Fprintf(pp.out(), "  Incomplete: %s\n", color.New(color.FgRed).Sprint(s.Incomplete))
	_, _ = fmt.Fprintf(pp.out(), "  Complete: %s\n", color.New(color.FgGreen).Sprint(s.Complete))
	pp.Progress(s.Ratio())
}

// Details prints the selected fields of each task as a two column table.
func (pp *PrettyPrint) Details(details []journal.Detail) {
	bold := color.New(color.Bold)
	for i, d := range details {
		if i > 0 {
			pp.NewLine()
		}

		tbl := uitable.New()
		tbl.Separator = " "
		tbl.Wrap = true
		tbl.MaxColWidth = 72

		title := color.New(color.FgRed)
		if d.Task.IsDone() {
			title = color.New(color.FgGreen)
		}
		tbl.AddRow(bold.Sprint("Task:"), fmt.Sprintf("[%d] %s", d.Index, title.Sprint(d.Task.Action)))
		if d.Fields.Group {
			tbl.AddRow(bold.Sprint("Group:"), d.Task.Group)
		}
		if d.Fields.Created {
			tbl.AddRow(bold.Sprint("Created:"), d.Task.Created)
		}
		if d.Fields.Version {
			tbl.AddRow(bold.Sprint("Version:"), d.Version)
		}
		if d.Fields.State {
			tbl.AddRow(bold.Sprint("Done:"), doneState(d.Task))
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
}

func doneState(t *journal.Task) string {
	if t.IsDone() {
		return t.Done
	}
	return "false"
}
