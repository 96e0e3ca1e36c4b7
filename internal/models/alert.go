package models

// AlertStatusActive is the only status a support alert ever holds; no
// resolution workflow exists.
const AlertStatusActive = "active"

// SupportAlert records a user-initiated request for help. The notify-sponsor
// flag is stored but no notification transport exists.
type SupportAlert struct {
	OwnerID       string `json:"userId"`
	Timestamp     string `json:"timestamp"`
	NotifySponsor bool   `json:"notifySponsor"`
	Status        string `json:"status"`
}
