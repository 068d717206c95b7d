package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionalNegatives(t *testing.T) {
	root := NewRootCommand(nil, "test")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"negative index", []string{"done", "-1"}, []string{"done", "--", "-1"}},
		{"after global flag value", []string{"--file", "x.txt", "done", "-3"}, []string{"--file", "x.txt", "done", "--", "-3"}},
		{"flag after index kept before separator", []string{"done", "-2", "--backend", "json"}, []string{"done", "--backend", "json", "--", "-2"}},
		{"positive index unchanged", []string{"done", "2"}, []string{"done", "2"}},
		{"explicit separator unchanged", []string{"done", "--", "-1"}, []string{"done", "--", "-1"}},
		{"other command unchanged", []string{"add", "-1"}, []string{"add", "-1"}},
		{"flag value named done", []string{"--file", "done", "list"}, []string{"--file", "done", "list"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PositionalNegatives(root, tt.args))
		})
	}
}
