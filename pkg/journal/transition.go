package journal

import (
	"fmt"
	"strings"
)

// IncompleteTasksError blocks a version advance. It carries the offending
// tasks so callers can show them.
type IncompleteTasksError struct {
	Version string
	Tasks   []IndexedTask
}

func (e *IncompleteTasksError) Error() string {
	noun := "tasks"
	if len(e.Tasks) == 1 {
		noun = "task"
	}
	return fmt.Sprintf("no upgrade with incomplete tasks: %d incomplete %s in %s", len(e.Tasks), noun, e.Version)
}

// NextOptions configures Next.
type NextOptions struct {
	// Tag labels the new version. An empty tag clears the current one.
	Tag string
	// Now is the build timestamp of the new version.
	Now string
}

// Next advances the selected part of the version. Nothing changes while the
// current version has incomplete tasks; an *IncompleteTasksError lists them.
func Next(j *Journal, part Part, o NextOptions) (Version, error) {
	if part < Major || part > Patch {
		return j.Version, fmt.Errorf("%w: %d", ErrInvalidPart, int(part))
	}

	incomplete := false
	current := j.Current()
	if pending := Tasks(j, TaskFilter{Version: current, Done: &incomplete}); len(pending) > 0 {
		return j.Version, &IncompleteTasksError{Version: current, Tasks: pending}
	}

	j.Version = j.Version.Bump(part)
	next := j.Current()
	tag := strings.TrimSpace(o.Tag)

	last := ""
	if p, ok := j.Tags.Last(); ok {
		last = p.Value
	}
	if tag != "" && tag != last {
		j.Tags.Set(next, tag)
	}

	j.Tag = tag
	j.LastBuild = o.Now
	j.Versions.Set(next, o.Now)
	return j.Version, nil
}

// Revert undoes the most recent Next. The latest history entry and its tag
// are dropped and the journal returns to the entry before it, or to 0.0.0
// when the history runs out.
func Revert(j *Journal) Version {
	if popped, ok := j.Versions.Pop(); ok {
		j.Tags.Delete(popped.Key)
	}

	j.Version = Version{}
	j.LastBuild = ""
	if last, ok := j.Versions.Last(); ok {
		if v, err := ParseVersion(last.Key); err == nil {
			j.Version = v
		}
		// The first history entry is the init point, not a build.
		if j.Versions.Len() > 1 {
			j.LastBuild = last.Value
		}
	}

	j.Tag, _ = j.Tags.Get(j.Current())
	return j.Version
}
