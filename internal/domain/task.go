// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"strings"
)

// Task is one to-do item in the persisted sequence.
// Fields are ordered to minimize memory padding.
type Task struct {
	Description string `json:"description" yaml:"description"` // Free-form text
	Index       int    `json:"index" yaml:"index"`             // 1-based position, assigned on load
	Done        bool   `json:"done" yaml:"done"`               // Completion flag
}

// Marker returns the status marker for the task.
func (t Task) Marker() string {
	return MarkerFor(t.Done)
}

// Line returns the persisted text form of the task, without a trailing newline.
func (t Task) Line() string {
	return t.Marker() + " " + t.Description
}

// ListLine returns the numbered form shown by list, e.g. "1. [ ] buy milk".
func (t Task) ListLine() string {
	return strconv.Itoa(t.Index) + ". " + t.Line()
}

// ParseLine decodes a persisted line into a task.
// ok is false when the line does not start with a known status marker.
// The returned task has no index; callers assign it with Reindex.
func ParseLine(line string) (task Task, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	for _, m := range knownMarkers {
		if line == m.text {
			return Task{Done: m.done}, true
		}
		if strings.HasPrefix(line, m.text+" ") {
			return Task{Description: line[len(m.text)+1:], Done: m.done}, true
		}
	}
	return Task{}, false
}

// NormalizeDescription folds line breaks into single spaces so the
// description fits on one persisted line.
func NormalizeDescription(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// Reindex assigns 1-based indices in slice order.
func Reindex(tasks []Task) {
	for i := range tasks {
		tasks[i].Index = i + 1
	}
}

// ValidIndex reports whether index addresses a task in a sequence of length n.
func ValidIndex(index, n int) bool {
	return index >= 1 && index <= n
}
