// Package journal holds the version journal document and the handlers that
// mutate it. Nothing here touches the disk; callers load a Journal, hand it
// to a handler and save the result.
package journal

import (
	"strings"
	"time"
)

// DefaultLayout renders timestamps like "6/29/2022 15:07:15 GMT".
const DefaultLayout = "1/2/2006 15:04:05 GMT"

// Stamp formats t in UTC with layout, or DefaultLayout when layout is empty.
func Stamp(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	return t.UTC().Format(layout)
}

// Task is a unit of work recorded against the version that was active when
// it was created. An empty Done means the task is incomplete.
type Task struct {
	Action  string `json:"action"`
	Group   string `json:"group,omitempty"`
	Created string `json:"created"`
	Done    string `json:"done,omitempty"`
}

// IsDone reports whether the task carries a completion timestamp.
func (t *Task) IsDone() bool {
	return t.Done != ""
}

// Journal is the persisted document.
type Journal struct {
	Name      string           `json:"name"`
	Version   Version          `json:"version"`
	LastBuild string           `json:"lastBuild"`
	Tag       string           `json:"tag"`
	Tags      Ordered[string]  `json:"tags"`
	Tasks     Ordered[[]*Task] `json:"tasks"`
	Versions  Ordered[string]  `json:"versions"`
}

// InitOptions configures New.
type InitOptions struct {
	// Version is the initial version, "0.0.0" when empty.
	Version string
	// Tag labels the initial version when not empty.
	Tag string
	// Now is the timestamp recorded for the initial version.
	Now string
}

// New creates a journal at the requested starting version. The starting
// version is the first entry of the version history.
func New(name string, o InitOptions) (*Journal, error) {
	v := Version{}
	if s := strings.TrimSpace(o.Version); s != "" {
		var err error
		if v, err = ParseVersion(s); err != nil {
			return nil, err
		}
	}

	j := &Journal{
		Name:    strings.TrimSpace(name),
		Version: v,
		Tag:     strings.TrimSpace(o.Tag),
	}
	if j.Tag != "" {
		j.Tags.Set(v.String(), j.Tag)
	}
	j.Versions.Set(v.String(), o.Now)
	return j, nil
}

// Current returns the active version string.
func (j *Journal) Current() string {
	return j.Version.String()
}

// CurrentTasks returns the task list of the active version.
func (j *Journal) CurrentTasks() []*Task {
	tasks, _ := j.Tasks.Get(j.Current())
	return tasks
}

// Previous returns the second to last version in the history, or "0.0.0".
func (j *Journal) Previous() string {
	if p, ok := j.Versions.At(-2); ok {
		return p.Key
	}
	return Version{}.String()
}

// ResolveVersion expands "." to the current version and ".." to the
// previous one. Any other value is returned trimmed.
func (j *Journal) ResolveVersion(v string) string {
	switch v = strings.TrimSpace(v); v {
	case ".":
		return j.Current()
	case "..":
		return j.Previous()
	}
	return v
}

// Clear drops every task of the current version and reports how many were removed.
func Clear(j *Journal) int {
	n := len(j.CurrentTasks())
	j.Tasks.Delete(j.Current())
	return n
}
