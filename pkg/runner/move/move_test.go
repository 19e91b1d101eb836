package move

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/runner/runnertest"
)

func init() {
	color.NoColor = true
}

func TestMove(t *testing.T) {
	mem := runnertest.Journal(t)
	var buf bytes.Buffer
	n := &Move{Output: runner.Output{Out: &buf}, Index: 3, Group: "bug", Persistence: mem}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if g := mem.Journal().CurrentTasks()[2].Group; g != "bug" {
		t.Fatalf("expected group bug, got %q", g)
	}
	if !strings.Contains(buf.String(), "Group:") || !strings.Contains(buf.String(), "bug") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	n.Group = ""
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("ungroup: %v", err)
	}
	if g := mem.Journal().CurrentTasks()[2].Group; g != "" {
		t.Fatalf("expected no group, got %q", g)
	}
}

func TestMoveInvalid(t *testing.T) {
	mem := runnertest.Journal(t)
	n := &Move{Output: runner.Output{Out: &bytes.Buffer{}}, Index: 7, Group: "bug", Persistence: mem}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("move: %v", err)
	}
	if mem.Saves() != 0 {
		t.Fatalf("invalid index should not save")
	}
}
