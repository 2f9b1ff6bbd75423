package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/dmitrijs2005/healthmate/internal/client/api"
	"github.com/dmitrijs2005/healthmate/internal/client/config"
	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/session"
	"github.com/dmitrijs2005/healthmate/internal/client/storage"
	"github.com/dmitrijs2005/healthmate/internal/client/validation"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// Mode reflects last-known server reachability, shown in the prompt.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// sessionStore is the slice of session.Store the CLI needs. Tests provide a
// lightweight fake.
type sessionStore interface {
	State() session.State
	Login(ctx context.Context, mode validation.Mode, creds models.Credentials) error
	Logout(ctx context.Context) error
}

type App struct {
	config  *config.Config
	api     api.Client
	session sessionStore
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader
	Mode    Mode
}

// NewApp wires the client together: local database, HTTP API client and the
// session store. The saved session is restored here, before the command loop
// starts, so every later guard decision happens with loading finished.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.Language, cfg.RequestTimeout)

	store := session.NewStore(apiClient, db, log)
	if err := store.Restore(ctx); err != nil {
		// A failed restore is not fatal; the user can sign in again.
		log.Warn(ctx, "session restore failed", "error", err)
	}

	return &App{
		config:  cfg,
		api:     apiClient,
		session: store,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the reachability watcher and the command loop. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the API client and the local database.
func (a *App) Close() error {
	if err := a.api.Close(); err != nil {
		return err
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher periodically probes the server and keeps the
// prompt's online/offline indicator current.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
