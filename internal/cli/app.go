// Package cli is the portal's terminal surface: a small REPL that signs
// sessions in and out, renders role dashboards, and drives the journal and
// support workflows. Every action runs to completion (mutate, persist,
// re-render) before the next line is read.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/config"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/logging"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/models"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/services"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/session"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/store"
	"github.com/Arungadam/Alcohol-Recovery-MENTIS006-CognitiveKinetics/internal/view"
)

type App struct {
	config   *config.Config
	store    *store.Store
	accounts services.AccountService
	journal  services.JournalService
	support  services.SupportService
	views    *view.Registry
	log      logging.Logger

	// current is the session's value copy of the signed-in account. It is
	// allowed to diverge from the store's record; see package session.
	current *models.Account

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	st := store.New(db, log)
	if err := st.Load(ctx); err != nil {
		return nil, err
	}

	cache := session.NewFileCache(cfg.SessionCachePath)
	journal := services.NewJournalService(st, log)

	return &App{
		config:   cfg,
		store:    st,
		accounts: services.NewAccountService(st, cache, log),
		journal:  journal,
		support:  services.NewSupportService(st, log),
		views:    view.NewRegistry(st, journal),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.current != nil
}
