package domain

import (
	"path/filepath"
	"testing"
)

func TestTaskRefName(t *testing.T) {
	if got := TaskRefName("todo"); got != "refs/todo/tasks" {
		t.Errorf("TaskRefName() = %q", got)
	}
}

func TestTempPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{filepath.Join("/data", "todos.txt"), filepath.Join("/data", ".todos.txt.tmp")},
		{"todos.txt", ".todos.txt.tmp"},
	}

	for _, tt := range tests {
		if got := TempPath(tt.path); got != tt.want {
			t.Errorf("TempPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
