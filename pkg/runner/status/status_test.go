package status

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/printers"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/runner/runnertest"
	"tableflip.dev/jot/pkg/store/storetest"
)

func init() {
	color.NoColor = true
}

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	n := &Status{Output: runner.Output{Out: &buf}, Persistence: runnertest.Journal(t)}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "0.1.1\nbeta\nTotal tasks: 3\n  Incomplete: 2\n  Complete: 1\n") {
		t.Fatalf("unexpected status %q", buf.String())
	}
}

func TestStatusJSON(t *testing.T) {
	var buf bytes.Buffer
	n := &Status{Output: runner.Output{Out: &buf, Format: printers.FormatJSON}, Persistence: runnertest.Journal(t)}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("status: %v", err)
	}
	var view printers.StatusView
	if err := json.Unmarshal(buf.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Name != "usage" || view.Version != "0.1.1" || view.Total != 3 || view.Complete != 1 {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestStatusWatch(t *testing.T) {
	mem := runnertest.Journal(t)
	var out runnertest.Buffer
	n := &Status{Output: runner.Output{Out: &out}, Watch: true, Persistence: mem}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Do(ctx) }()

	waitFor(t, &out, "Total tasks: 3")

	j := mem.Journal()
	journal.Finish(j, "t3")
	if err := mem.Save(j); err != nil {
		t.Fatalf("save: %v", err)
	}
	waitFor(t, &out, "  Incomplete: 0")

	if err := mem.Delete(); err != nil {
		t.Fatalf("delete: %v", err)
	}
	waitFor(t, &out, "was removed")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not stop")
	}
}

func waitFor(t *testing.T, out *runnertest.Buffer, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q in:\n%s", want, out.String())
}

func TestStatusLastBuild(t *testing.T) {
	j, _ := journal.New("built", journal.InitOptions{Now: "t0"})
	if _, err := journal.Next(j, journal.Minor, journal.NextOptions{Now: "6/28/2022 13:07:15 GMT"}); err != nil {
		t.Fatalf("next: %v", err)
	}

	var buf bytes.Buffer
	n := &Status{Clock: runnertest.Clock(), Output: runner.Output{Out: &buf}, Persistence: storetest.New(j)}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("status: %v", err)
	}
	want := "0.1.0\nTotal tasks: 0\nLast build: 6/28/2022 13:07:15 GMT (1d2h ago)\n"
	if buf.String() != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, buf.String())
	}
}
