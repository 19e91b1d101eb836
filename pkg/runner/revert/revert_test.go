package revert

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store/storetest"
)

func init() {
	color.NoColor = true
}

func TestRevert(t *testing.T) {
	j, _ := journal.New("revert", journal.InitOptions{Version: "0.1.1", Tag: "beta", Now: "t0"})
	journal.AddTasks(j, []string{"ship"}, journal.AddOptions{Now: "t1"})
	journal.Finish(j, "t2")
	if _, err := journal.Next(j, journal.Patch, journal.NextOptions{Tag: "gamma", Now: "t3"}); err != nil {
		t.Fatalf("next: %v", err)
	}
	mem := storetest.New(j)

	var buf bytes.Buffer
	n := &Revert{Output: runner.Output{Out: &buf}, Persistence: mem}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("revert: %v", err)
	}

	got := mem.Journal()
	if got.Current() != "0.1.1" || got.Tag != "beta" {
		t.Fatalf("expected 0.1.1 beta, got %s %q", got.Current(), got.Tag)
	}
	if got.Tags.Has("0.1.2") || got.Versions.Has("0.1.2") {
		t.Fatalf("reverted version left behind: %s", mem.Raw())
	}
	if buf.String() != "0.1.1\n1 [✓] ship\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
