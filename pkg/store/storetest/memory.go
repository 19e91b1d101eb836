// Package storetest provides an in-memory store.Persistence for tests.
package storetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"tableflip.dev/jot/pkg/journal"
	"tableflip.dev/jot/pkg/store"
)

// Memory keeps the journal as encoded JSON so every Load hands out a fresh
// copy, the way the disk store does.
type Memory struct {
	mu       sync.Mutex
	data     []byte
	saves    int
	watchers []chan store.Event

	// SaveErr, when set, is returned by Save instead of storing.
	SaveErr error
}

// New returns a Memory holding j, or an empty Memory when j is nil.
func New(j *journal.Journal) *Memory {
	m := &Memory{}
	if j != nil {
		b, err := json.Marshal(j)
		if err != nil {
			panic(err)
		}
		m.data = b
	}
	return m
}

func (m *Memory) Path() string {
	return "memory://" + store.DefaultFile
}

func (m *Memory) Exists() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data != nil
}

func (m *Memory) Load() (*journal.Journal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, fmt.Errorf("%w in memory", store.ErrNotFound)
	}
	j := &journal.Journal{}
	if err := json.Unmarshal(m.data, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (m *Memory) Save(j *journal.Journal) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	b, err := json.Marshal(j)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data = b
	m.saves++
	m.notifyLocked(store.Event{Type: store.EventChanged})
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return fmt.Errorf("%w in memory", store.ErrNotFound)
	}
	m.data = nil
	m.notifyLocked(store.Event{Type: store.EventRemoved})
	return nil
}

func (m *Memory) Watch(ctx context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notifyLocked(ev store.Event) {
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}

// Saves reports how many times Save stored a journal.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Journal decodes the stored document, or returns nil when there is none.
func (m *Memory) Journal() *journal.Journal {
	j, err := m.Load()
	if err != nil {
		return nil
	}
	return j
}

// Raw returns the stored JSON.
func (m *Memory) Raw() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data)
}

var _ store.Persistence = (*Memory)(nil)
