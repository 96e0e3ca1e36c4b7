package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/encodex"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store"
)

// Entry is a journal record decoded for display.
type Entry struct {
	ID   int64
	Text string
	Date string
}

// JournalService owns the personal journal. Payloads are stored through the
// reversible encodex codec; they are encoded, not encrypted.
type JournalService interface {
	// Add encodes and stores a new entry at the head of the collection.
	// Empty text is silently ignored: no error, no state change.
	Add(ctx context.Context, ownerID, text string) error

	// EntriesFor returns ownerID's entries, most recent first, decoded.
	// An entry whose payload fails to decode is logged and skipped; the
	// rest of the list still renders.
	EntriesFor(ctx context.Context, ownerID string) []Entry
}

type journalService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewJournalService(st *store.Store, log logging.Logger) JournalService {
	return &journalService{store: st, log: log, now: time.Now}
}

func (s *journalService) Add(ctx context.Context, ownerID, text string) error {
	if text == "" {
		return nil
	}

	now := s.now()
	entry := models.JournalEntry{
		ID:      now.UnixMilli(),
		OwnerID: ownerID,
		Content: encodex.Encode(text),
		Date:    now.Format(time.RFC3339),
	}

	s.store.PrependJournal(entry)
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("saving journal entry: %w", err)
	}
	return nil
}

func (s *journalService) EntriesFor(ctx context.Context, ownerID string) []Entry {
	records := s.store.JournalFor(ownerID)

	result := make([]Entry, 0, len(records))
	for _, rec := range records {
		text, err := encodex.Decode(rec.Content)
		if err != nil {
			s.log.Error(ctx, "skipping undecodable journal entry", "id", rec.ID, "error", err)
			continue
		}
		result = append(result, Entry{ID: rec.ID, Text: text, Date: rec.Date})
	}
	return result
}
