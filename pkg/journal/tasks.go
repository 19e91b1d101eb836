package journal

import (
	"sort"
	"strings"
)

// IndexedTask is a task with its 1-based position in a listing and the
// version it belongs to.
type IndexedTask struct {
	Index   int
	Version string
	Task    *Task
}

// TaskFilter narrows Tasks.
type TaskFilter struct {
	// Version is a literal version, "." for the current one, ".." for the
	// previous one, or empty for every version.
	Version string
	// Done keeps only complete (true) or incomplete (false) tasks when set.
	Done *bool
}

// Tasks lists tasks with stable 1-based indices. Without a version, every
// version's tasks are concatenated in ascending version order and numbered
// continuously. The done filter is applied after numbering.
func Tasks(j *Journal, f TaskFilter) []IndexedTask {
	var keys []string
	if f.Version != "" {
		v := j.ResolveVersion(f.Version)
		if !j.Tasks.Has(v) {
			return []IndexedTask{}
		}
		keys = []string{v}
	} else {
		keys = j.Tasks.Keys()
		sort.SliceStable(keys, func(a, b int) bool {
			return compareVersionKeys(keys[a], keys[b]) < 0
		})
	}

	out := make([]IndexedTask, 0)
	i := 0
	for _, k := range keys {
		tasks, _ := j.Tasks.Get(k)
		for _, t := range tasks {
			i++
			if f.Done != nil && t.IsDone() != *f.Done {
				continue
			}
			out = append(out, IndexedTask{Index: i, Version: k, Task: t})
		}
	}
	return out
}

// AddOptions configures AddTasks.
type AddOptions struct {
	Group string
	Now   string
}

// AddTasks appends one task per non-blank action to the current version.
func AddTasks(j *Journal, actions []string, o AddOptions) []*Task {
	added := make([]*Task, 0, len(actions))
	for _, a := range actions {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		added = append(added, &Task{
			Action:  a,
			Group:   strings.TrimSpace(o.Group),
			Created: o.Now,
		})
	}
	if len(added) == 0 {
		return added
	}
	current := j.Current()
	tasks, _ := j.Tasks.Get(current)
	j.Tasks.Set(current, append(tasks, added...))
	return added
}

// resolveIndex maps a 1-based index, or a negative index counted from the
// end, onto a slice of length n.
func resolveIndex(n, i int) (int, bool) {
	switch {
	case i > 0 && i <= n:
		return i - 1, true
	case i < 0 && -i <= n:
		return n + i, true
	}
	return 0, false
}

// TaskAt returns the current version's task at a 1-based or negative index.
func TaskAt(j *Journal, index int) (*Task, bool) {
	tasks := j.CurrentTasks()
	i, ok := resolveIndex(len(tasks), index)
	if !ok {
		return nil, false
	}
	return tasks[i], true
}

// Check stamps the indexed tasks of the current version as done. Tasks that
// are already done keep their timestamp and invalid indices are ignored. It
// returns the number of tasks changed.
func Check(j *Journal, indices []int, now string) int {
	n := 0
	for _, i := range indices {
		if t, ok := TaskAt(j, i); ok && !t.IsDone() {
			t.Done = now
			n++
		}
	}
	return n
}

// Uncheck clears the completion timestamp of the indexed tasks.
func Uncheck(j *Journal, indices []int) int {
	n := 0
	for _, i := range indices {
		if t, ok := TaskAt(j, i); ok && t.IsDone() {
			t.Done = ""
			n++
		}
	}
	return n
}

// Finish marks every incomplete task of the current version done.
func Finish(j *Journal, now string) int {
	n := 0
	for _, t := range j.CurrentTasks() {
		if !t.IsDone() {
			t.Done = now
			n++
		}
	}
	return n
}

// DeleteTasks removes the indexed tasks of the current version. All indices
// refer to the list as it was before any removal.
func DeleteTasks(j *Journal, indices []int) int {
	tasks := j.CurrentTasks()
	drop := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		if at, ok := resolveIndex(len(tasks), i); ok {
			drop[at] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]*Task, 0, len(tasks)-len(drop))
	for i, t := range tasks {
		if _, ok := drop[i]; !ok {
			kept = append(kept, t)
		}
	}
	j.Tasks.Set(j.Current(), kept)
	return len(drop)
}

// Move puts the indexed task into group, or takes it out of its group when
// group is empty.
func Move(j *Journal, index int, group string) bool {
	t, ok := TaskAt(j, index)
	if !ok {
		return false
	}
	t.Group = strings.TrimSpace(group)
	return true
}
