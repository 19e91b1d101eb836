// Package runnertest holds fixtures shared by the runner tests.
package runnertest

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/runner"
	"tableflip.dev/jot/pkg/store/storetest"
)

// Now is the instant Clock reports.
var Now = time.Date(2022, 6, 29, 15, 7, 15, 0, time.UTC)

// Stamp is Now in the default layout.
const Stamp = "6/29/2022 15:07:15 GMT"

// Clock always reports Now.
func Clock() runner.Clock {
	return runner.Clock{Now: func() time.Time { return Now }}
}

// Journal returns a store holding a 0.1.1 journal tagged beta with three
// feature tasks, the second one done.
func Journal(t *testing.T) *storetest.Memory {
	t.Helper()
	j, err := journal.New("usage", journal.InitOptions{Version: "0.1.1", Tag: "beta", Now: "t0"})
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	journal.AddTasks(j, []string{"+forced upgrade", "+group movement", "+version movement"},
		journal.AddOptions{Group: "feature", Now: "t1"})
	journal.Check(j, []int{2}, "t2")
	return storetest.New(j)
}

// Buffer is a bytes.Buffer safe for a runner writing from another goroutine.
type Buffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
