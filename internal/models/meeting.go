package models

// MeetingType classifies a meeting as open or closed attendance.
type MeetingType string

const (
	MeetingOpen   MeetingType = "Open"
	MeetingClosed MeetingType = "Closed"
)

// Meeting is seed directory data. Time is a display string and is never
// parsed or compared.
type Meeting struct {
	ID    int         `json:"id"`
	Title string      `json:"title"`
	Time  string      `json:"time"`
	Type  MeetingType `json:"type"`
}
