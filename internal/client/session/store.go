package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/healthmate/internal/client/api"
	"github.com/dmitrijs2005/healthmate/internal/client/models"
	"github.com/dmitrijs2005/healthmate/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/healthmate/internal/client/validation"
	"github.com/dmitrijs2005/healthmate/internal/common"
	"github.com/dmitrijs2005/healthmate/internal/dbx"
	"github.com/dmitrijs2005/healthmate/internal/logging"
)

// Durable-storage keys of the persisted session pair. They are written and
// purged together; one without the other is treated as corruption.
const (
	tokenKey = "token"
	userKey  = "user"
)

// State is a point-in-time snapshot of the session.
//
// IsAuthenticated is derived: it is true exactly when a token is held, and a
// token is held exactly when a user is. IsLoading is true only until the
// initial Restore has finished.
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Store is the single source of truth for the client's identity state.
//
// Mutations (Login, Logout, Restore) are expected to be serialized by the
// caller: they are triggered by discrete user or lifecycle events, and the
// UI disables the triggering control while a call is outstanding. The
// internal mutex only protects snapshot reads against a concurrent commit,
// so a reader during an in-flight Login observes the pre-call state.
type Store struct {
	api api.Client
	db  *sql.DB
	log logging.Logger

	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool

	// gen increments on every committed mutation. A Login completion whose
	// captured generation no longer matches is stale and gets discarded.
	gen uint64
}

// NewStore builds a Store in the loading state. Call Restore before any
// consumer makes an authorization decision.
func NewStore(apiClient api.Client, db *sql.DB, log logging.Logger) *Store {
	return &Store{
		api:     apiClient,
		db:      db,
		log:     log.With("component", "session"),
		loading: true,
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		User:            s.user,
		Token:           s.token,
		IsAuthenticated: s.token != "",
		IsLoading:       s.loading,
	}
}

// Restore loads the persisted session pair, once, at process start. A
// complete, parseable pair becomes the current state; a partial or corrupt
// pair is purged and the session starts unauthenticated. Whatever the
// outcome, the loading flag is cleared exactly once.
func (s *Store) Restore(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	repo := s.metadataRepo(s.db)

	token, err := repo.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to read saved session: %w", err)
	}
	userRaw, err := repo.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("failed to read saved session: %w", err)
	}

	if len(token) == 0 || len(userRaw) == 0 {
		if len(token) != 0 || len(userRaw) != 0 {
			s.log.Warn(ctx, "partial saved session, purging")
			return s.purge(ctx)
		}
		return nil
	}

	user, err := models.ParseUser(userRaw)
	if err != nil {
		s.log.Warn(ctx, "saved session is corrupt, purging", "error", err)
		return s.purge(ctx)
	}

	s.commit(user, string(token))
	s.log.Info(ctx, "session restored", "user", user.Username)
	return nil
}

// Login validates the credentials, submits them to the mode-specific
// endpoint, and on success commits and persists the new session.
//
// Validation failures come back as *validation.Error without any network
// traffic. Transport and rejection errors come back unchanged with the
// session untouched. A completion that arrives after an intervening mutation
// (say, a logout while the request was in flight) is discarded and reported
// as common.ErrSessionSuperseded.
func (s *Store) Login(ctx context.Context, mode validation.Mode, creds models.Credentials) error {
	if err := validation.Check(mode, creds); err != nil {
		return err
	}

	gen := s.generation()

	var res *api.AuthResult
	var err error
	if mode == validation.ModeSignup {
		res, err = s.api.Signup(ctx, api.NewSignupRequest(creds))
	} else {
		res, err = s.api.Login(ctx, creds.Username, creds.Password)
	}
	if err != nil {
		return err
	}

	user, err := models.ParseUser(res.User)
	if err != nil {
		return fmt.Errorf("unusable user record in auth response: %w", err)
	}

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.log.Warn(ctx, "discarding stale login completion", "user", user.Username)
		return common.ErrSessionSuperseded
	}
	s.user = user
	s.token = res.Token
	s.gen++
	s.mu.Unlock()

	if err := s.persist(ctx, res.Token, res.User); err != nil {
		// The in-memory session stays valid; only restore-on-restart is
		// lost, and the next successful login rewrites the pair.
		s.log.Error(ctx, "failed to persist session", "error", err)
	}

	s.log.Info(ctx, "signed in", "user", user.Username, "mode", string(mode))
	return nil
}

// Logout clears the session and purges the persisted pair. Calling it while
// already signed out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.purge(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.gen++
	s.mu.Unlock()

	s.log.Info(ctx, "signed out")
	return nil
}

func (s *Store) metadataRepo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (s *Store) commit(user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.gen++
}

func (s *Store) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// persist writes the token/user pair in one transaction.
func (s *Store) persist(ctx context.Context, token string, userRaw json.RawMessage) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.metadataRepo(tx)
		if err := repo.Set(ctx, tokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, userKey, userRaw)
	})
}

// purge erases the pair in one transaction.
func (s *Store) purge(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.metadataRepo(tx)
		if err := repo.Delete(ctx, tokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, userKey)
	})
}
