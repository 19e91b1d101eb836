package journal

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func newJournal(t *testing.T, version string) *Journal {
	t.Helper()
	j, err := New("test", InitOptions{Version: version, Now: "t0"})
	if err != nil {
		t.Fatalf("new journal: %v", err)
	}
	return j
}

func snapshot(t *testing.T, j *Journal) string {
	t.Helper()
	b, err := json.Marshal(j)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func actions(list []IndexedTask) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.Task.Action)
	}
	return out
}

func TestNewDefaults(t *testing.T) {
	j := newJournal(t, "")
	if j.Current() != "0.0.0" {
		t.Fatalf("expected 0.0.0, got %s", j.Current())
	}
	if j.LastBuild != "" || j.Tag != "" || j.Tags.Len() != 0 {
		t.Fatalf("unexpected fresh journal %+v", j)
	}
	if got := j.Versions.Keys(); !reflect.DeepEqual(got, []string{"0.0.0"}) {
		t.Fatalf("expected history [0.0.0], got %v", got)
	}

	if _, err := New("bad", InitOptions{Version: "1.x.0"}); !errors.Is(err, ErrInvalidVersion) {
		t.Fatalf("expected ErrInvalidVersion, got %v", err)
	}
}

func TestWorkedExample(t *testing.T) {
	j := newJournal(t, "")

	AddTasks(j, []string{"write docs"}, AddOptions{Now: "t0"})
	tasks := j.CurrentTasks()
	if len(tasks) != 1 || tasks[0].Action != "write docs" || tasks[0].IsDone() {
		t.Fatalf("unexpected tasks %+v", tasks)
	}

	before := snapshot(t, j)
	_, err := Next(j, Patch, NextOptions{Now: "t1"})
	var blocked *IncompleteTasksError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected IncompleteTasksError, got %v", err)
	}
	if len(blocked.Tasks) != 1 || blocked.Version != "0.0.0" {
		t.Fatalf("unexpected blocked report %+v", blocked)
	}
	if after := snapshot(t, j); after != before {
		t.Fatalf("blocked next changed the journal:\n%s\n%s", before, after)
	}

	if n := Finish(j, "t1"); n != 1 {
		t.Fatalf("expected 1 finished task, got %d", n)
	}

	v, err := Next(j, Patch, NextOptions{Now: "t1"})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if v.String() != "0.0.1" || j.Current() != "0.0.1" {
		t.Fatalf("expected 0.0.1, got %s", v)
	}
	want := []Pair[string]{{Key: "0.0.0", Value: "t0"}, {Key: "0.0.1", Value: "t1"}}
	if got := j.Versions.Pairs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected history %v, got %v", want, got)
	}
	if j.LastBuild != "t1" {
		t.Fatalf("expected lastBuild t1, got %q", j.LastBuild)
	}

	if v := Revert(j); v.String() != "0.0.0" {
		t.Fatalf("expected revert to 0.0.0, got %s", v)
	}
	if j.LastBuild != "" {
		t.Fatalf("expected lastBuild cleared, got %q", j.LastBuild)
	}
}

func TestNextTagBookkeeping(t *testing.T) {
	j, err := New("test", InitOptions{Version: "1.0.0", Tag: "launch", Now: "t0"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := Next(j, Minor, NextOptions{Tag: "launch", Now: "t1"}); err != nil {
		t.Fatalf("next: %v", err)
	}
	if j.Tags.Has("1.1.0") {
		t.Fatalf("repeated tag should not be recorded again")
	}
	if j.Tag != "launch" {
		t.Fatalf("expected current tag launch, got %q", j.Tag)
	}

	if _, err := Next(j, Major, NextOptions{Tag: " rewrite ", Now: "t2"}); err != nil {
		t.Fatalf("next: %v", err)
	}
	if tag, _ := j.Tags.Get("2.0.0"); tag != "rewrite" {
		t.Fatalf("expected tag rewrite for 2.0.0, got %q", tag)
	}

	if _, err := Next(j, Patch, NextOptions{Now: "t3"}); err != nil {
		t.Fatalf("next: %v", err)
	}
	if j.Tag != "" {
		t.Fatalf("untagged next should clear the current tag, got %q", j.Tag)
	}

	Revert(j)
	if j.Current() != "2.0.0" || j.Tag != "rewrite" || j.LastBuild != "t2" {
		t.Fatalf("unexpected state after revert: %s %q %q", j.Current(), j.Tag, j.LastBuild)
	}
	Revert(j)
	if j.Current() != "1.1.0" || j.Tags.Has("2.0.0") {
		t.Fatalf("unexpected state after second revert: %s %v", j.Current(), j.Tags.Keys())
	}
	Revert(j)
	if j.Current() != "1.0.0" || j.Tag != "launch" {
		t.Fatalf("expected 1.0.0 launch, got %s %q", j.Current(), j.Tag)
	}
	Revert(j)
	if j.Current() != "0.0.0" || j.Versions.Len() != 0 || j.Tag != "" {
		t.Fatalf("expected empty history at 0.0.0, got %s %v", j.Current(), j.Versions.Keys())
	}
	Revert(j)
	if j.Current() != "0.0.0" {
		t.Fatalf("revert on empty history should stay at 0.0.0")
	}
}

func TestNextRejectsUnknownPart(t *testing.T) {
	j := newJournal(t, "")
	if _, err := Next(j, Part(7), NextOptions{}); !errors.Is(err, ErrInvalidPart) {
		t.Fatalf("expected ErrInvalidPart, got %v", err)
	}
}

func TestNextOnlyBlocksOnCurrentVersion(t *testing.T) {
	j := newJournal(t, "")
	AddTasks(j, []string{"old"}, AddOptions{Now: "t0"})
	Finish(j, "t0")
	if _, err := Next(j, Minor, NextOptions{Now: "t1"}); err != nil {
		t.Fatalf("next: %v", err)
	}
	old, _ := j.Tasks.Get("0.0.0")
	old[0].Done = ""
	if len(j.CurrentTasks()) != 0 {
		t.Fatalf("new version should start without tasks")
	}
	if _, err := Next(j, Minor, NextOptions{Now: "t2"}); err != nil {
		t.Fatalf("tasks of older versions must not block: %v", err)
	}
}

func TestCheckUncheckRoundTrip(t *testing.T) {
	j := newJournal(t, "")
	AddTasks(j, []string{"a", "b", "c"}, AddOptions{Now: "t0"})
	before := snapshot(t, j)

	if n := Check(j, []int{2, -1, 0, 9, -9}, "t1"); n != 2 {
		t.Fatalf("expected 2 checked, got %d", n)
	}
	tasks := j.CurrentTasks()
	if tasks[0].IsDone() || !tasks[1].IsDone() || !tasks[2].IsDone() {
		t.Fatalf("unexpected done states %+v", tasks)
	}
	if n := Check(j, []int{2}, "t2"); n != 0 || tasks[1].Done != "t1" {
		t.Fatalf("re-check must keep the first timestamp, got %q", tasks[1].Done)
	}

	if n := Uncheck(j, []int{2, 3}); n != 2 {
		t.Fatalf("expected 2 unchecked, got %d", n)
	}
	if after := snapshot(t, j); after != before {
		t.Fatalf("check then uncheck changed the journal:\n%s\n%s", before, after)
	}
}

func TestDeleteTasksResolvesAgainstOriginalList(t *testing.T) {
	j := newJournal(t, "")
	AddTasks(j, []string{"a", "b", "c", "d"}, AddOptions{Now: "t0"})

	if n := DeleteTasks(j, []int{1, -1, 1, 0, 12}); n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
	got := actions(Tasks(j, TaskFilter{Version: "."}))
	if want := []string{"b", "c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if n := DeleteTasks(j, []int{5}); n != 0 {
		t.Fatalf("invalid index should delete nothing, got %d", n)
	}
}

func TestMoveAndClear(t *testing.T) {
	j := newJournal(t, "")
	AddTasks(j, []string{"a", " ", "b"}, AddOptions{Group: "feature", Now: "t0"})
	if len(j.CurrentTasks()) != 2 {
		t.Fatalf("blank actions should be skipped")
	}

	if !Move(j, 1, "bug") || j.CurrentTasks()[0].Group != "bug" {
		t.Fatalf("expected task moved to bug")
	}
	if !Move(j, -1, "") || j.CurrentTasks()[1].Group != "" {
		t.Fatalf("expected group cleared")
	}
	if Move(j, 3, "x") {
		t.Fatalf("move with invalid index should report false")
	}

	if n := Clear(j); n != 2 || j.Tasks.Has("0.0.0") {
		t.Fatalf("expected current tasks cleared, got %d", n)
	}
}

func TestTasksListing(t *testing.T) {
	j := newJournal(t, "0.9.0")
	AddTasks(j, []string{"nine-a", "nine-b"}, AddOptions{Now: "t0"})
	Finish(j, "t0")
	Next(j, Minor, NextOptions{Now: "t1"})
	AddTasks(j, []string{"ten-a", "ten-b", "ten-c"}, AddOptions{Now: "t1"})
	Check(j, []int{2}, "t2")

	// Insert an older version key last to prove listing sorts numerically.
	j.Tasks.Set("0.2.0", []*Task{{Action: "two", Created: "t"}})

	all := Tasks(j, TaskFilter{})
	if got, want := actions(all), []string{"two", "nine-a", "nine-b", "ten-a", "ten-b", "ten-c"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, it := range all {
		if it.Index != i+1 {
			t.Fatalf("expected continuous indices, got %d at %d", it.Index, i)
		}
	}

	if got := actions(Tasks(j, TaskFilter{Version: "."})); !reflect.DeepEqual(got, []string{"ten-a", "ten-b", "ten-c"}) {
		t.Fatalf("unexpected current tasks %v", got)
	}
	if got := actions(Tasks(j, TaskFilter{Version: ".."})); !reflect.DeepEqual(got, []string{"nine-a", "nine-b"}) {
		t.Fatalf("unexpected previous tasks %v", got)
	}
	if got := Tasks(j, TaskFilter{Version: "4.0.0"}); len(got) != 0 {
		t.Fatalf("unknown version should list nothing, got %v", got)
	}

	done, notDone := true, false
	for _, version := range []string{"", ".", "..", "0.9.0"} {
		full := Tasks(j, TaskFilter{Version: version})
		complete := Tasks(j, TaskFilter{Version: version, Done: &done})
		incomplete := Tasks(j, TaskFilter{Version: version, Done: &notDone})
		if len(complete)+len(incomplete) != len(full) {
			t.Fatalf("%q: filtered listings do not add up", version)
		}
		seen := map[int]bool{}
		for _, it := range append(complete, incomplete...) {
			if seen[it.Index] {
				t.Fatalf("%q: index %d listed twice", version, it.Index)
			}
			seen[it.Index] = true
		}
		for _, it := range full {
			if !seen[it.Index] {
				t.Fatalf("%q: index %d missing from filtered listings", version, it.Index)
			}
		}
	}

	current := Tasks(j, TaskFilter{Version: ".", Done: &done})
	if len(current) != 1 || current[0].Index != 2 {
		t.Fatalf("filtered listing should keep original indices, got %+v", current)
	}
}

func TestPreviousWithoutHistory(t *testing.T) {
	j := &Journal{}
	if j.Previous() != "0.0.0" {
		t.Fatalf("expected 0.0.0, got %s", j.Previous())
	}
}

func TestSummarizeAndDetails(t *testing.T) {
	j, _ := New("proj", InitOptions{Version: "0.1.1", Tag: "beta", Now: "t0"})
	AddTasks(j, []string{"a", "b", "c"}, AddOptions{Group: "feature", Now: "t1"})
	Check(j, []int{1}, "t2")

	s := Summarize(j)
	if s.Version != "0.1.1" || s.Tag != "beta" || s.Total != 3 || s.Complete != 1 || s.Incomplete != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if r := s.Ratio(); r < 0.33 || r > 0.34 {
		t.Fatalf("unexpected ratio %f", r)
	}

	details := Details(j, []int{1, 7, -1}, DetailOptions{})
	if len(details) != 2 {
		t.Fatalf("expected 2 details, got %d", len(details))
	}
	if details[0].Index != 1 || details[1].Index != 3 || details[1].Task.Action != "c" {
		t.Fatalf("unexpected details %+v", details)
	}
	if details[0].Fields != (DetailOptions{Group: true, Created: true, Version: true, State: true}) {
		t.Fatalf("expected all fields when none selected, got %+v", details[0].Fields)
	}

	only := Details(j, []int{2}, DetailOptions{State: true})
	if only[0].Fields != (DetailOptions{State: true}) || only[0].Version != "0.1.1" {
		t.Fatalf("unexpected selected fields %+v", only[0])
	}
}
