// Package session persists the active sign-in between runs, playing the
// role of an ephemeral session cache next to the durable record store.
//
// The cache holds a value copy of the Account taken at sign-in time. It is
// NOT kept coherent with the record store: later store mutations do not
// rewrite it unless a caller explicitly does so, and a restored session may
// therefore carry stale fields. That divergence is a reproduced behavior of
// the system this portal replaces.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/common"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/google/uuid"
)

// Record is the cached session: a fresh id per sign-in and a value copy of
// the account.
type Record struct {
	ID        string         `json:"id"`
	Account   models.Account `json:"account"`
	CreatedAt string         `json:"createdAt"`
}

// FileCache stores the session record as a single JSON file. The file exists
// iff a session is active.
type FileCache struct {
	path string
}

func NewFileCache(path string) *FileCache {
	return &FileCache{path: path}
}

// Save writes a new session record for acct, overwriting any previous one,
// and returns the record.
func (c *FileCache) Save(acct models.Account) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Account:   acct,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return Record{}, fmt.Errorf("marshalling session: %w", err)
	}
	if err := os.WriteFile(c.path, b, 0o600); err != nil {
		return Record{}, fmt.Errorf("writing session cache: %w", err)
	}
	return rec, nil
}

// Load returns the cached session. An absent or unreadable cache yields
// common.ErrNoSession.
func (c *FileCache) Load() (Record, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, common.ErrNoSession
		}
		return Record{}, fmt.Errorf("reading session cache: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return Record{}, common.ErrNoSession
	}
	return rec, nil
}

// Clear removes the cache file. Clearing an absent cache is not an error.
func (c *FileCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing session cache: %w", err)
	}
	return nil
}
