package domain

// Status markers written at the start of each persisted line.
const (
	MarkerPending = "[ ]"
	MarkerDone    = "[x]"

	// Written by older versions of the tool; accepted on read only.
	markerDoneLegacy = "[✅]"
)

type marker struct {
	text string
	done bool
}

// knownMarkers lists every marker accepted by ParseLine, in match order.
var knownMarkers = []marker{
	{text: MarkerPending, done: false},
	{text: MarkerDone, done: true},
	{text: markerDoneLegacy, done: true},
}

// MarkerFor returns the marker written for the given completion state.
func MarkerFor(done bool) string {
	if done {
		return MarkerDone
	}
	return MarkerPending
}

// StatusFilter selects tasks by completion state when listing.
type StatusFilter int

const (
	FilterAll StatusFilter = iota
	FilterPending
	FilterDone
)

// Match reports whether a task passes the filter.
func (f StatusFilter) Match(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Done
	case FilterDone:
		return t.Done
	default:
		return true
	}
}

// Display returns a human-readable representation of the completion state.
func Display(done bool) string {
	if done {
		return "Done"
	}
	return "Pending"
}
