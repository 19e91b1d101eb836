package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"tableflip.dev/jot/pkg/journal"
)

// Format selects how command results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat accepts text, json, yaml (or yml) and toml.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported output format %q, expected one of %s", s, strings.Join(Formats(), ", "))
}

// Structured reports whether f is a machine readable format.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML || f == FormatTOML
}

// Encode writes v in the requested machine readable format. TOML needs a
// table at the top level, so v should be one of the *View structs.
func Encode(w io.Writer, f Format, v interface{}) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("format %q is not structured", f)
}

// TaskView is one listed task.
type TaskView struct {
	Index   int    `json:"index" yaml:"index" toml:"index"`
	Version string `json:"version" yaml:"version" toml:"version"`
	Action  string `json:"action" yaml:"action" toml:"action"`
	Group   string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Created string `json:"created" yaml:"created" toml:"created"`
	Done    string `json:"done,omitempty" yaml:"done,omitempty" toml:"done,omitempty"`
}

// TaskListView wraps a listing.
type TaskListView struct {
	Tasks []TaskView `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// NewTaskList converts a listing for Encode.
func NewTaskList(tasks []journal.IndexedTask) TaskListView {
	v := TaskListView{Tasks: make([]TaskView, 0, len(tasks))}
	for _, it := range tasks {
		v.Tasks = append(v.Tasks, TaskView{
			Index:   it.Index,
			Version: it.Version,
			Action:  it.Task.Action,
			Group:   it.Task.Group,
			Created: it.Task.Created,
			Done:    it.Task.Done,
		})
	}
	return v
}

// StatusView is the encoded form of journal.Summary.
type StatusView struct {
	Name       string `json:"name" yaml:"name" toml:"name"`
	Version    string `json:"version" yaml:"version" toml:"version"`
	Tag        string `json:"tag,omitempty" yaml:"tag,omitempty" toml:"tag,omitempty"`
	LastBuild  string `json:"lastBuild,omitempty" yaml:"lastBuild,omitempty" toml:"lastBuild,omitempty"`
	Total      int    `json:"total" yaml:"total" toml:"total"`
	Complete   int    `json:"complete" yaml:"complete" toml:"complete"`
	Incomplete int    `json:"incomplete" yaml:"incomplete" toml:"incomplete"`
}

// NewStatus converts a summary for Encode.
func NewStatus(s journal.Summary) StatusView {
	return StatusView{
		Name:       s.Name,
		Version:    s.Version,
		Tag:        s.Tag,
		LastBuild:  s.LastBuild,
		Total:      s.Total,
		Complete:   s.Complete,
		Incomplete: s.Incomplete,
	}
}

// DetailView holds only the selected fields of a task.
type DetailView struct {
	Index    int     `json:"index" yaml:"index" toml:"index"`
	Action   string  `json:"action" yaml:"action" toml:"action"`
	Group    *string `json:"group,omitempty" yaml:"group,omitempty" toml:"group,omitempty"`
	Created  *string `json:"created,omitempty" yaml:"created,omitempty" toml:"created,omitempty"`
	Version  *string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
	Complete *bool   `json:"complete,omitempty" yaml:"complete,omitempty" toml:"complete,omitempty"`
	Done     *string `json:"done,omitempty" yaml:"done,omitempty" toml:"done,omitempty"`
}

// DetailListView wraps task details.
type DetailListView struct {
	Tasks []DetailView `json:"tasks" yaml:"tasks" toml:"tasks"`
}

// NewDetailList converts task details for Encode.
func NewDetailList(details []journal.Detail) DetailListView {
	v := DetailListView{Tasks: make([]DetailView, 0, len(details))}
	for _, d := range details {
		t := *d.Task
		dv := DetailView{Index: d.Index, Action: t.Action}
		if d.Fields.Group {
			dv.Group = &t.Group
		}
		if d.Fields.Created {
			dv.Created = &t.Created
		}
		if d.Fields.Version {
			version := d.Version
			dv.Version = &version
		}
		if d.Fields.State {
			complete := t.IsDone()
			dv.Complete = &complete
			if complete {
				dv.Done = &t.Done
			}
		}
		v.Tasks = append(v.Tasks, dv)
	}
	return v
}

// ErrorView is written in place of a result when a command fails.
type ErrorView struct {
	Error      string     `json:"error" yaml:"error" toml:"error"`
	Incomplete []TaskView `json:"incomplete,omitempty" yaml:"incomplete,omitempty" toml:"incomplete,omitempty"`
}
