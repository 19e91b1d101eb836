// Package runner holds what the command runners under it share: a clock for
// journal timestamps and the destination and format of their output.
package runner

import (
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
)

// Clock stamps journal entries.
type Clock struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// Layout defaults to journal.DefaultLayout.
	Layout string
}

func (c Clock) Stamp() string {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	return journal.Stamp(now(), c.Layout)
}

// Output is where a runner writes its result.
type Output struct {
	Format printers.Format
	// Out defaults to color.Output.
	Out io.Writer
}

func (o Output) Writer() io.Writer {
	if o.Out != nil {
		return o.Out
	}
	return color.Output
}

func (o Output) Pretty() *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: o.Writer()}
}

func (o Output) Structured() bool {
	return o.Format.Structured()
}

// Encode writes v in the structured format.
func (o Output) Encode(v interface{}) error {
	return printers.Encode(o.Writer(), o.Format, v)
}

// Tasks writes a task listing in either format.
func (o Output) Tasks(tasks []journal.IndexedTask) error {
	if o.Structured() {
		return o.Encode(printers.NewTaskList(tasks))
	}
	o.Pretty().Tasks(tasks)
	return nil
}

// Status writes a summary in either format.
func (o Output) Status(s journal.Summary) error {
	if o.Structured() {
		return o.Encode(printers.NewStatus(s))
	}
	o.Pretty().Status(s)
	return nil
}
