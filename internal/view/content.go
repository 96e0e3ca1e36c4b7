// Package view maps (role, view-id) pairs to content descriptions. The
// dispatch is a table keyed on tagged values rather than string comparisons;
// a pair with no handler yields an explicit no-content value, which callers
// render as nothing at all.
package view

// ViewID selects which content panel is rendered within a role's dashboard.
type ViewID string

const (
	ViewHome       ViewID = "home"
	ViewJournal    ViewID = "journal"
	ViewMeetings   ViewID = "meetings"
	ViewPrivacy    ViewID = "privacy-settings"
	ViewSponsees   ViewID = "sponsees"
	ViewMessages   ViewID = "messages"
	ViewSchedule   ViewID = "schedule"
	ViewGroupNotes ViewID = "group-notes"
	ViewSystem     ViewID = "system"
)

// ParseViewID reports whether s names a known view. Unknown strings are not
// an error for rendering purposes (they dispatch to no content), but the
// REPL uses this to give usable feedback.
func ParseViewID(s string) (ViewID, bool) {
	switch ViewID(s) {
	case ViewHome, ViewJournal, ViewMeetings, ViewPrivacy, ViewSponsees,
		ViewMessages, ViewSchedule, ViewGroupNotes, ViewSystem:
		return ViewID(s), true
	}
	return "", false
}

// Section is one block of a rendered panel.
type Section struct {
	Heading string
	Lines   []string
}

// Content is a renderable description of a panel. The zero-ish None value
// marks the deliberate no-op for unmatched (role, view) pairs.
type Content struct {
	Title    string
	Sections []Section
	Empty    bool
}

// None is the explicit no-content variant.
func None() Content {
	return Content{Empty: true}
}
