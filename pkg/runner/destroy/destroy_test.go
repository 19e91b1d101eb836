package destroy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/runner/runnertest"
	"tableflip.dev/jot/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestDestroy(t *testing.T) {
	mem := runnertest.Journal(t)
	var buf bytes.Buffer
	n := &Destroy{Output: runner.Output{Out: &buf}, Persistence: mem}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if mem.Exists() {
		t.Fatalf("expected the journal removed")
	}
	if buf.String() != "Deleted memory://.journal.json\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	if err := n.Do(context.Background()); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDestroyJSON(t *testing.T) {
	mem := runnertest.Journal(t)
	var buf bytes.Buffer
	n := &Destroy{Output: runner.Output{Out: &buf, Format: printers.FormatJSON}, Persistence: mem}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("destroy: %v", err)
	}

	var view struct {
		Deleted string `json:"deleted"`
	}
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatalf("expected json output, got %q: %v", buf.String(), err)
	}
	if view.Deleted != mem.Path() {
		t.Fatalf("unexpected view %+v", view)
	}
}
