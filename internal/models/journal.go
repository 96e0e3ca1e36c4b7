package models

// JournalEntry is one personal reflection. Content holds the encoded
// payload produced by internal/encodex, never plaintext. Entries are
// visible only to their owning account.
type JournalEntry struct {
	ID      int64  `json:"id"`
	OwnerID string `json:"userId"`
	Content string `json:"content"`
	Date    string `json:"date"`
}
