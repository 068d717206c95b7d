package domain

import "testing"

func TestMarkerFor(t *testing.T) {
	if got := MarkerFor(false); got != "[ ]" {
		t.Errorf("MarkerFor(false) = %q, want %q", got, "[ ]")
	}
	if got := MarkerFor(true); got != "[x]" {
		t.Errorf("MarkerFor(true) = %q, want %q", got, "[x]")
	}
}

func TestStatusFilter_Match(t *testing.T) {
	pending := Task{Description: "a"}
	done := Task{Description: "b", Done: true}

	tests := []struct {
		name   string
		filter StatusFilter
		task   Task
		want   bool
	}{
		{"all pending", FilterAll, pending, true},
		{"all done", FilterAll, done, true},
		{"pending pending", FilterPending, pending, true},
		{"pending done", FilterPending, done, false},
		{"done pending", FilterDone, pending, false},
		{"done done", FilterDone, done, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.task); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	if Display(true) != "Done" || Display(false) != "Pending" {
		t.Errorf("unexpected display values %q / %q", Display(true), Display(false))
	}
}
