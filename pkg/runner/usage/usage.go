package usage

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/runner"
)

const banner = `
     _       _
    (_) ___ | |_
    | |/ _ \| __|
    | | (_) | |_
   _/ |\___/ \__|
  |__/   version journaling
`

// Step is one command of the walkthrough.
type Step struct {
	Commands []string
	About    string
	Sample   string
}

// Walkthrough takes a journal from init to delete.
var Walkthrough = []Step{{
	Commands: []string{`journal init "usage"`},
	About: "Creates .journal.json in the current directory. An existing journal is " +
		"only replaced with -o/--overwrite.",
}, {
	Commands: []string{`journal status`},
	About:    "Shows the current version, its tag and how many of its tasks are done.",
	Sample:   "0.0.0\nTotal tasks: 0",
}, {
	Commands: []string{`journal init "usage" -o -v 0.1.0 -t "initial release"`},
	Sample:   "0.1.0\ninitial release\nTotal tasks: 0",
}, {
	Commands: []string{`journal next patch`},
	About: `Moves to the next "major", "minor" or "patch" version. -t/--tag labels ` +
		"the new version.",
	Sample: "0.1.1\nTotal tasks: 0",
}, {
	Commands: []string{
		`jot task "+forced upgrade" -g feature`,
		`jot tasks "+group movement" "+version movement" -g feature`,
	},
	About: "Adds tasks to the current version, optionally in a group.",
}, {
	Commands: []string{`journal tasks`},
	About:    "Lists the tasks of every version.",
	Sample:   "1 [ ] +forced upgrade\n2 [ ] +group movement\n3 [ ] +version movement",
}, {
	Commands: []string{`jot check 2`},
	About:    "Marks tasks done by their 1-based index. Negative indices count from the end.",
}, {
	Commands: []string{`journal tasks -d`, `journal tasks --no-done`},
	About:    "Lists only the done, or only the open, tasks. Indices do not change.",
	Sample:   "2 [✓] +group movement\n\n1 [ ] +forced upgrade\n3 [ ] +version movement",
}, {
	Commands: []string{`jot status 1 2`},
	About: "Shows the details of tasks. -g, -c, -v and -s pick the group, creation " +
		"time, version and state.",
	Sample: "Task:    [1] +forced upgrade\nGroup:   feature\nCreated: 6/29/2022 15:07:15 GMT\n" +
		"Version: 0.1.1\nDone:    false",
}, {
	Commands: []string{`jot uncheck 2`},
	About:    "Marks a done task open again.",
}, {
	Commands: []string{`journal next patch`},
	About:    "A version with open tasks cannot be left.",
	Sample: "No upgrade with incomplete tasks!\n\n1 [ ] +forced upgrade\n2 [ ] +group movement\n" +
		"3 [ ] +version movement",
}, {
	Commands: []string{`jot finish`, `journal next patch`},
	About:    "Marks every open task done, after which the version can move on.",
	Sample:   "0.1.2\nTotal tasks: 0",
}, {
	Commands: []string{`journal tasks -v 0.1.1`},
	About: `Lists the tasks of one version. "." is the current version and ".." the ` +
		"previous one.",
}, {
	Commands: []string{`journal revert`},
	About:    "Undoes the last journal next.",
	Sample:   "0.1.1\n1 [✓] +forced upgrade\n2 [✓] +group movement\n3 [✓] +version movement",
}, {
	Commands: []string{`jot ui`},
	About:    "Opens an interactive checklist of the current version's tasks.",
}, {
	Commands: []string{`journal delete`},
	About:    "Deletes the journal in the current directory.",
}}

// Usage prints a walkthrough of both commands.
type Usage struct {
	runner.Output

	// Width wraps the descriptions, 80 when zero.
	Width int
}

func (n *Usage) Do(ctx context.Context) error {
	w := n.Writer()
	width := n.Width
	if width <= 0 {
		width = 80
	}

	prompt := color.New(color.Bold)
	sample := color.New(color.Faint)

	_, _ = color.New(color.FgBlue).Fprintln(w, strings.TrimPrefix(banner, "\n"))
	for _, s := range Walkthrough {
		for _, c := range s.Commands {
			_, _ = prompt.Fprintf(w, "> %s\n", c)
		}
		if s.About != "" {
			_, _ = fmt.Fprintf(w, "\n%s\n", printers.Wrap(s.About, width))
		}
		if s.Sample != "" {
			_, _ = fmt.Fprintln(w)
			_, _ = sample.Fprintln(w, s.Sample)
		}
		_, _ = fmt.Fprintln(w)
	}
	return nil
}
