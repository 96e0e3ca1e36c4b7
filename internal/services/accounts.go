// Package services contains the application services sitting between the
// REPL surface and the record store.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/common"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/session"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store"
)

// AccountService owns the session lifecycle.
//
// Contract:
//   - Register: create a participant account; duplicate pseudonyms are
//     rejected with common.ErrPseudonymTaken and no state change.
//   - SignIn: pseudonym-only sign-in. An existing account has its role
//     overwritten with the selected one; an unseen pseudonym gets a
//     synthesized account. Either way the session cache is rewritten with a
//     value copy of the result.
//   - SignOut: clear the session cache; the account collection is untouched.
//   - Restore: re-adopt a cached session, as after a reload.
//   - ResetSobrietyDate: update the given (session) copy and the store
//     record. The session cache is deliberately left stale; see package
//     session.
//
// There is no authentication anywhere: that is a characteristic of the
// system being reproduced, not an omission.
type AccountService interface {
	Register(ctx context.Context, username, sobrietyDate string) (*models.Account, error)
	SignIn(ctx context.Context, username string, role models.Role) (*models.Account, error)
	SignOut(ctx context.Context) error
	Restore(ctx context.Context) (*models.Account, error)
	ResetSobrietyDate(ctx context.Context, acct *models.Account, date string) error
}

type accountService struct {
	store *store.Store
	cache *session.FileCache
	log   logging.Logger
	now   func() time.Time
}

func NewAccountService(st *store.Store, cache *session.FileCache, log logging.Logger) AccountService {
	return &accountService{store: st, cache: cache, log: log, now: time.Now}
}

func (s *accountService) Register(ctx context.Context, username, sobrietyDate string) (*models.Account, error) {
	if _, ok := s.store.FindAccount(username); ok {
		return nil, common.ErrPseudonymTaken
	}

	now := s.now()
	if sobrietyDate == "" {
		sobrietyDate = now.Format(time.RFC3339)
	}

	acct := models.Account{
		ID:           strconv.FormatInt(now.UnixMilli(), 10),
		Username:     username,
		Role:         models.RoleParticipant,
		SobrietyDate: sobrietyDate,
		Joined:       now.Format(time.RFC3339),
	}

	s.store.AppendAccount(acct)
	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}

	s.log.Info(ctx, "account registered", "id", acct.ID)
	return &acct, nil
}

func (s *accountService) SignIn(ctx context.Context, username string, role models.Role) (*models.Account, error) {
	acct, ok := s.store.FindAccount(username)
	if ok {
		// The selected role wins over whatever the account held before.
		acct.Role = role
		s.store.ReplaceAccount(acct)
	} else {
		now := s.now()
		acct = models.Account{
			ID:           "demo_" + strconv.FormatInt(now.UnixMilli(), 10),
			Username:     username,
			Role:         role,
			SobrietyDate: now.Format(time.RFC3339),
			Joined:       now.Format(time.RFC3339),
		}
		s.store.AppendAccount(acct)
	}

	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("saving account: %w", err)
	}

	if _, err := s.cache.Save(acct); err != nil {
		// The sign-in itself succeeded; a broken cache only costs restore.
		s.log.Warn(ctx, "session cache write failed", "error", err)
	}

	s.log.Info(ctx, "signed in", "id", acct.ID, "role", acct.Role)
	return &acct, nil
}

func (s *accountService) SignOut(ctx context.Context) error {
	if err := s.cache.Clear(); err != nil {
		return err
	}
	s.log.Info(ctx, "signed out")
	return nil
}

func (s *accountService) Restore(ctx context.Context) (*models.Account, error) {
	rec, err := s.cache.Load()
	if err != nil {
		return nil, err
	}
	acct := rec.Account
	return &acct, nil
}

func (s *accountService) ResetSobrietyDate(ctx context.Context, acct *models.Account, date string) error {
	acct.SobrietyDate = date
	s.store.ReplaceAccount(*acct)
	if err := s.store.Save(ctx); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	// The session cache keeps the pre-reset copy; a restored session will
	// see the old date until the next sign-in.
	return nil
}
