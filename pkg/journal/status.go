package journal

// Summary is the state reported by the journal status command.
type Summary struct {
	Name       string
	Version    string
	Tag        string
	LastBuild  string
	Total      int
	Complete   int
	Incomplete int
}

// Ratio is the completed fraction of the current tasks, 0 when there are none.
func (s Summary) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Complete) / float64(s.Total)
}

// Summarize counts the current version's tasks.
func Summarize(j *Journal) Summary {
	s := Summary{
		Name:      j.Name,
		Version:   j.Current(),
		Tag:       j.Tag,
		LastBuild: j.LastBuild,
	}
	for _, t := range j.CurrentTasks() {
		s.Total++
		if t.IsDone() {
			s.Complete++
		}
	}
	s.Incomplete = s.Total - s.Complete
	return s
}

// DetailOptions picks the fields of a task detail view. With nothing
// selected, every field is shown.
type DetailOptions struct {
	Group   bool
	Created bool
	Version bool
	State   bool
}

// Any reports whether at least one field was selected.
func (o DetailOptions) Any() bool {
	return o.Group || o.Created || o.Version || o.State
}

// Resolved returns o, or every field when none was selected.
func (o DetailOptions) Resolved() DetailOptions {
	if o.Any() {
		return o
	}
	return DetailOptions{Group: true, Created: true, Version: true, State: true}
}

// Detail is a task of the current version with the fields to display.
type Detail struct {
	IndexedTask
	Fields DetailOptions
}

// Details looks up the indexed tasks of the current version. Invalid indices
// are skipped.
func Details(j *Journal, indices []int, o DetailOptions) []Detail {
	tasks := j.CurrentTasks()
	fields := o.Resolved()
	out := make([]Detail, 0, len(indices))
	for _, i := range indices {
		at, ok := resolveIndex(len(tasks), i)
		if !ok {
			continue
		}
		out = append(out, Detail{
			IndexedTask: IndexedTask{Index: at + 1, Version: j.Current(), Task: tasks[at]},
			Fields:      fields,
		})
	}
	return out
}
