package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store"
)

// SupportService records user-initiated requests for help. The notify
// flag is stored with the alert; no notification transport exists, so
// nothing is actually delivered anywhere.
type SupportService interface {
	Request(ctx context.Context, ownerID string, notifySponsor bool) (*models.SupportAlert, error)
}

type supportService struct {
	store *store.Store
	log   logging.Logger
	now   func() time.Time
}

func NewSupportService(st *store.Store, log logging.Logger) SupportService {
	return &supportService{store: st, log: log, now: time.Now}
}

func (s *supportService) Request(ctx context.Context, ownerID string, notifySponsor bool) (*models.SupportAlert, error) {
	alert := models.SupportAlert{
		OwnerID:       ownerID,
		Timestamp:     s.now().Format(time.RFC3339),
		NotifySponsor: notifySponsor,
		Status:        models.AlertStatusActive,
	}

	s.store.AppendAlert(alert)
	if err := s.store.Save(ctx); err != nil {
		return nil, fmt.Errorf("saving support alert: %w", err)
	}

	s.log.Info(ctx, "support alert recorded", "owner", ownerID, "notify_sponsor", notifySponsor)
	return &alert, nil
}
