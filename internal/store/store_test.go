package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"

	_ "modernc.org/sqlite"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE collections (
  key TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(setupDB(t), testLogger())
}

func TestLoad_EmptyStorageUsesDefaults(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, 0, s.AccountCount())
	assert.Empty(t, s.JournalFor("anyone"))
	assert.Empty(t, s.Alerts())

	meetings := s.Meetings()
	require.Len(t, meetings, 2)
	assert.Equal(t, "Morning Reflection", meetings[0].Title)
	assert.Equal(t, models.MeetingOpen, meetings[0].Type)
	assert.Equal(t, "Step Study", meetings[1].Title)
	assert.Equal(t, models.MeetingClosed, meetings[1].Type)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := New(db, testLogger())
	require.NoError(t, s.Load(ctx))

	s.AppendAccount(models.Account{ID: "1", Username: "quiet_hope", Role: models.RoleParticipant})
	s.PrependJournal(models.JournalEntry{ID: 10, OwnerID: "1", Content: "cGF5bG9hZA=="})
	s.AppendAlert(models.SupportAlert{OwnerID: "1", Status: models.AlertStatusActive})
	require.NoError(t, s.Save(ctx))

	// fresh store over the same database sees the persisted state
	reloaded := New(db, testLogger())
	require.NoError(t, reloaded.Load(ctx))

	acct, ok := reloaded.FindAccount("quiet_hope")
	require.True(t, ok)
	assert.Equal(t, "1", acct.ID)
	assert.Len(t, reloaded.JournalFor("1"), 1)
	assert.Len(t, reloaded.Alerts(), 1)
}

func TestSave_IsIdempotentFullOverwrite(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := New(db, testLogger())
	require.NoError(t, s.Load(ctx))
	s.AppendAccount(models.Account{ID: "1", Username: "a"})
	require.NoError(t, s.Save(ctx))
	require.NoError(t, s.Save(ctx))

	reloaded := New(db, testLogger())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 1, reloaded.AccountCount())
}

func TestLoad_UnparsableCollectionDefaultsOnlyThatCollection(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO collections (key, value) VALUES (?, ?)`, "rp_users", []byte(`{{{ not json`))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO collections (key, value) VALUES (?, ?)`, "rp_journals", []byte(`[{"id":7,"userId":"1","content":"eA==","date":"d"}]`))
	require.NoError(t, err)

	s := New(db, testLogger())
	require.NoError(t, s.Load(ctx))

	assert.Equal(t, 0, s.AccountCount(), "corrupt accounts fall back to empty")
	require.Len(t, s.JournalFor("1"), 1, "sibling collection still loads")
	assert.Len(t, s.Meetings(), 2, "absent meetings get the seed records")
}

func TestLoad_NoValidationOfParsedContent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// role is nonsense but parses fine; the store must not correct it
	_, err := db.Exec(`INSERT INTO collections (key, value) VALUES (?, ?)`,
		"rp_users", []byte(`[{"id":"1","username":"x","role":"wizard"}]`))
	require.NoError(t, err)

	s := New(db, testLogger())
	require.NoError(t, s.Load(ctx))

	acct, ok := s.FindAccount("x")
	require.True(t, ok)
	assert.Equal(t, models.Role("wizard"), acct.Role)
}

func TestPrependJournal_MostRecentFirst(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))

	s.PrependJournal(models.JournalEntry{ID: 1, OwnerID: "u"})
	s.PrependJournal(models.JournalEntry{ID: 2, OwnerID: "u"})
	s.PrependJournal(models.JournalEntry{ID: 3, OwnerID: "other"})

	entries := s.JournalFor("u")
	require.Len(t, entries, 2)
	assert.Equal(t, int64(2), entries[0].ID)
	assert.Equal(t, int64(1), entries[1].ID)
}

func TestReplaceAccount(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))

	s.AppendAccount(models.Account{ID: "1", Username: "a", Role: models.RoleParticipant})
	s.ReplaceAccount(models.Account{ID: "1", Username: "a", Role: models.RoleSponsor})

	acct, ok := s.FindAccount("a")
	require.True(t, ok)
	assert.Equal(t, models.RoleSponsor, acct.Role)
	assert.Equal(t, 1, s.AccountCount())

	// unknown id is a no-op
	s.ReplaceAccount(models.Account{ID: "nope", Username: "b"})
	assert.Equal(t, 1, s.AccountCount())
}

func TestWipe_ResetsToDefaults(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	s := New(db, testLogger())
	require.NoError(t, s.Load(ctx))
	s.AppendAccount(models.Account{ID: "1", Username: "a"})
	s.PrependJournal(models.JournalEntry{ID: 1, OwnerID: "1"})
	require.NoError(t, s.Save(ctx))

	require.NoError(t, s.Wipe(ctx))

	assert.Equal(t, 0, s.AccountCount())
	assert.Empty(t, s.JournalFor("1"))
	assert.Len(t, s.Meetings(), 2)

	reloaded := New(db, testLogger())
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, 0, reloaded.AccountCount())
}

func TestExport_ValidJSONWithAllKeys(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Load(context.Background()))
	s.AppendAccount(models.Account{ID: "1", Username: "a"})

	b, err := s.Export()
	require.NoError(t, err)

	var dump map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &dump))
	for _, key := range []string{"rp_users", "rp_meetings", "rp_journals", "rp_alerts"} {
		assert.Contains(t, dump, key)
	}
}
