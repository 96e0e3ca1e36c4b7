// Package store implements the record store: four named collections held in
// memory and persisted as independently-keyed JSON values in a local sqlite
// database. Save is a full overwrite of all four keys and is idempotent;
// callers mutate a collection and then call Save.
//
// Execution is single-threaded and synchronous; the store does no locking.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/dbx"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store/kv"
)

// Storage keys, kept byte-compatible with the previous implementation.
const (
	keyAccounts = "rp_users"
	keyMeetings = "rp_meetings"
	keyJournals = "rp_journals"
	keyAlerts   = "rp_alerts"
)

// seedMeetings returns the default meeting directory used when no meetings
// collection has been persisted yet.
func seedMeetings() []models.Meeting {
	return []models.Meeting{
		{ID: 1, Title: "Morning Reflection", Time: "08:00 AM", Type: models.MeetingOpen},
		{ID: 2, Title: "Step Study", Time: "06:00 PM", Type: models.MeetingClosed},
	}
}

// Store owns the four collections. Construct one per process (or per test);
// there is no ambient singleton.
type Store struct {
	db  *sql.DB
	log logging.Logger

	accounts []models.Account
	meetings []models.Meeting
	journals []models.JournalEntry
	alerts   []models.SupportAlert
}

func New(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "store")}
}

func (s *Store) repo() kv.Repository {
	return kv.NewSQLiteRepository(s.db)
}

// Load deserializes each collection from durable storage. An absent or
// unparsable value is replaced by that collection's default; parsed content
// is otherwise taken as-is, without validation.
func (s *Store) Load(ctx context.Context) error {
	repo := s.repo()

	if err := loadCollection(ctx, repo, s.log, keyAccounts, &s.accounts, nil); err != nil {
		return err
	}
	if err := loadCollection(ctx, repo, s.log, keyMeetings, &s.meetings, seedMeetings()); err != nil {
		return err
	}
	if err := loadCollection(ctx, repo, s.log, keyJournals, &s.journals, nil); err != nil {
		return err
	}
	if err := loadCollection(ctx, repo, s.log, keyAlerts, &s.alerts, nil); err != nil {
		return err
	}
	return nil
}

func loadCollection[T any](ctx context.Context, repo kv.Repository, log logging.Logger, key string, dst *[]T, fallback []T) error {
	value, err := repo.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("loading %s: %w", key, err)
	}
	if value == nil {
		*dst = fallback
		return nil
	}
	var parsed []T
	if err := json.Unmarshal(value, &parsed); err != nil {
		log.Warn(ctx, "stored collection is unparsable, using default", "key", key, "error", err)
		*dst = fallback
		return nil
	}
	*dst = parsed
	return nil
}

// Save serializes all four collections and writes them in one transaction.
// A save after an unrelated read is harmless: it rewrites the same values.
func (s *Store) Save(ctx context.Context) error {
	blobs := map[string]any{
		keyAccounts: s.accounts,
		keyMeetings: s.meetings,
		keyJournals: s.journals,
		keyAlerts:   s.alerts,
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		for key, collection := range blobs {
			b, err := json.Marshal(collection)
			if err != nil {
				return fmt.Errorf("marshalling %s: %w", key, err)
			}
			if err := repo.Set(ctx, key, b); err != nil {
				return err
			}
		}
		return nil
	})
}

// Wipe clears durable storage and resets the in-memory collections to their
// defaults. The session cache is a separate medium and is not touched.
func (s *Store) Wipe(ctx context.Context) error {
	if err := s.repo().Clear(ctx); err != nil {
		return err
	}
	s.accounts = nil
	s.meetings = seedMeetings()
	s.journals = nil
	s.alerts = nil
	s.log.Info(ctx, "all collections wiped")
	return nil
}

// Export dumps all four collections as indented JSON under their storage
// keys.
func (s *Store) Export() ([]byte, error) {
	dump := map[string]any{
		keyAccounts: s.accountsOrEmpty(),
		keyMeetings: s.meetings,
		keyJournals: s.journalsOrEmpty(),
		keyAlerts:   s.alertsOrEmpty(),
	}
	return json.MarshalIndent(dump, "", "  ")
}

func (s *Store) accountsOrEmpty() []models.Account {
	if s.accounts == nil {
		return []models.Account{}
	}
	return s.accounts
}

func (s *Store) journalsOrEmpty() []models.JournalEntry {
	if s.journals == nil {
		return []models.JournalEntry{}
	}
	return s.journals
}

func (s *Store) alertsOrEmpty() []models.SupportAlert {
	if s.alerts == nil {
		return []models.SupportAlert{}
	}
	return s.alerts
}

// FindAccount returns a copy of the account with the given pseudonym.
func (s *Store) FindAccount(username string) (models.Account, bool) {
	for _, a := range s.accounts {
		if a.Username == username {
			return a, true
		}
	}
	return models.Account{}, false
}

func (s *Store) AppendAccount(a models.Account) {
	s.accounts = append(s.accounts, a)
}

// ReplaceAccount overwrites the stored account with the same id. A missing
// id is a no-op, matching the behavior being reproduced.
func (s *Store) ReplaceAccount(a models.Account) {
	for i := range s.accounts {
		if s.accounts[i].ID == a.ID {
			s.accounts[i] = a
			return
		}
	}
}

func (s *Store) AccountCount() int {
	return len(s.accounts)
}

// Accounts returns the account collection. Callers must not mutate it.
func (s *Store) Accounts() []models.Account {
	return s.accounts
}

func (s *Store) Meetings() []models.Meeting {
	return s.meetings
}

// PrependJournal inserts an entry at the head so the collection stays
// most-recent-first.
func (s *Store) PrependJournal(e models.JournalEntry) {
	s.journals = append([]models.JournalEntry{e}, s.journals...)
}

// JournalFor returns the entries owned by ownerID in stored order.
func (s *Store) JournalFor(ownerID string) []models.JournalEntry {
	var result []models.JournalEntry
	for _, e := range s.journals {
		if e.OwnerID == ownerID {
			result = append(result, e)
		}
	}
	return result
}

func (s *Store) AppendAlert(a models.SupportAlert) {
	s.alerts = append(s.alerts, a)
}

func (s *Store) Alerts() []models.SupportAlert {
	return s.alerts
}
