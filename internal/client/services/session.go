// Package services contains application services for the StackGuard client.
// This file defines the session manager: account creation, sign-in and
// sign-out, and the configured public key, all persisted in the local store.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/stackguard/internal/client/models"
	"github.com/dmitrijs2005/stackguard/internal/client/repositories/kv"
	"github.com/dmitrijs2005/stackguard/internal/common"
	"github.com/dmitrijs2005/stackguard/internal/dbx"
	"github.com/dmitrijs2005/stackguard/internal/logging"
)

// SessionService defines the session operations used by the CLI.
//
// Contract:
//   - Hydrate: restore the session and key flag from the store at startup.
//   - SignUp: register a new account and sign it in (ErrAccountExists on duplicate email).
//   - SignIn: sign in with an exact email/password match (ErrInvalidCredentials otherwise).
//   - SignOut: forget the session and the configured key. Idempotent.
//   - SetConfigKey / ClearConfigKey: store or forget the public key.
//   - Wipe: drop every stored slot, accounts included.
//   - StoredSlots: names of the slots currently present.
type SessionService interface {
	Hydrate(ctx context.Context) error
	SignUp(ctx context.Context, user models.User) error
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	SetConfigKey(ctx context.Context, key string) error
	ClearConfigKey(ctx context.Context) error
	ConfigKey(ctx context.Context) (string, error)
	CurrentUser() (models.Profile, bool)
	IsAuthenticated() bool
	HasConfigKey() bool
	Wipe(ctx context.Context) error
	StoredSlots(ctx context.Context) ([]string, error)
}

// SessionManager is the only reader and writer of the user collection,
// session and configuration-key slots. Storage is written first; memory is
// updated only after the write succeeded.
//
// It is not safe for concurrent use.
type SessionManager struct {
	db  *sql.DB
	log logging.Logger

	user         *models.Profile
	hasConfigKey bool
}

// NewSessionManager binds a manager to the local database. Call Hydrate
// before use to pick up a session from a previous run.
func NewSessionManager(db *sql.DB, log logging.Logger) *SessionManager {
	return &SessionManager{db: db, log: log}
}

func (m *SessionManager) repo() kv.Repository {
	return kv.NewSQLiteRepository(m.db)
}

// Hydrate loads the session and key flag written by a previous run.
//
// A session slot that does not decode to a profile is treated like a sign
// out: the session and key slots are deleted and the manager starts signed
// out without a key.
func (m *SessionManager) Hydrate(ctx context.Context) error {
	repo := m.repo()

	m.user = nil
	m.hasConfigKey = false

	raw, err := repo.Get(ctx, common.SessionKey)
	if err != nil {
		return fmt.Errorf("hydrate session: %w", err)
	}
	if raw != nil {
		var p models.Profile
		if err := json.Unmarshal(raw, &p); err != nil || !p.Valid() {
			m.log.Warn(ctx, "discarding unreadable session", "bytes", len(raw))
			if err := m.clearSession(ctx); err != nil {
				return fmt.Errorf("reset session: %w", err)
			}
		} else {
			m.user = &p
		}
	}

	key, err := repo.Get(ctx, common.ConfigKeyKey)
	if err != nil {
		return fmt.Errorf("hydrate config key: %w", err)
	}
	m.hasConfigKey = len(key) > 0

	m.log.Debug(ctx, "session hydrated", "authenticated", m.user != nil, "config_key", m.hasConfigKey)
	return nil
}

// SignUp appends user to the collection and signs it in. The collection and
// the new session are written in one transaction. If the email is already
// registered, nothing is written and common.ErrAccountExists is returned.
func (m *SessionManager) SignUp(ctx context.Context, user models.User) error {
	users, err := loadUsers(ctx, m.repo())
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == user.Email {
			m.log.Warn(ctx, "sign up rejected: email taken", "email", user.Email)
			return common.ErrAccountExists
		}
	}

	users = append(users, user)
	profile := user.Profile()

	err = dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := saveJSON(ctx, repo, common.UsersKey, users); err != nil {
			return err
		}
		return saveJSON(ctx, repo, common.SessionKey, profile)
	})
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	m.user = &profile
	m.log.Info(ctx, "account created", "email", profile.Email)
	return nil
}

// SignIn activates the account whose email and password both match exactly.
// On mismatch it returns common.ErrInvalidCredentials and leaves any current
// session as it was.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) error {
	repo := m.repo()

	users, err := loadUsers(ctx, repo)
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email != email || u.Password != password {
			continue
		}
		profile := u.Profile()
		if err := saveJSON(ctx, repo, common.SessionKey, profile); err != nil {
			return fmt.Errorf("sign in: %w", err)
		}
		m.user = &profile
		m.log.Info(ctx, "signed in", "email", email)
		return nil
	}

	m.log.Warn(ctx, "sign in rejected", "email", email)
	return common.ErrInvalidCredentials
}

// SignOut removes the session and the configured key. Calling it while
// signed out is harmless.
func (m *SessionManager) SignOut(ctx context.Context) error {
	if err := m.clearSession(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}

	if m.user != nil {
		m.log.Info(ctx, "signed out", "email", m.user.Email)
	}
	m.user = nil
	m.hasConfigKey = false
	return nil
}

// SetConfigKey stores key exactly as given. Length rules are enforced by the
// caller before this point.
func (m *SessionManager) SetConfigKey(ctx context.Context, key string) error {
	if err := m.repo().Set(ctx, common.ConfigKeyKey, []byte(key)); err != nil {
		return fmt.Errorf("set config key: %w", err)
	}
	m.hasConfigKey = key != ""
	m.log.Info(ctx, "config key stored", "length", len(key))
	return nil
}

// ClearConfigKey forgets the configured key but keeps the session, so the
// user is sent back to the configuration screen.
func (m *SessionManager) ClearConfigKey(ctx context.Context) error {
	if err := m.repo().Delete(ctx, common.ConfigKeyKey); err != nil {
		return fmt.Errorf("clear config key: %w", err)
	}
	m.hasConfigKey = false
	m.log.Info(ctx, "config key cleared")
	return nil
}

// ConfigKey returns the stored key, or common.ErrorNotFound when none is set.
func (m *SessionManager) ConfigKey(ctx context.Context) (string, error) {
	raw, err := m.repo().Get(ctx, common.ConfigKeyKey)
	if err != nil {
		return "", fmt.Errorf("read config key: %w", err)
	}
	if len(raw) == 0 {
		return "", common.ErrorNotFound
	}
	return string(raw), nil
}

// Wipe removes every slot, registered accounts included. It backs the
// reset maintenance command and is never reached from the screens.
func (m *SessionManager) Wipe(ctx context.Context) error {
	if err := m.repo().Clear(ctx); err != nil {
		return fmt.Errorf("wipe store: %w", err)
	}
	m.user = nil
	m.hasConfigKey = false
	m.log.Warn(ctx, "local store wiped")
	return nil
}

// CurrentUser returns the signed-in profile, if any.
func (m *SessionManager) CurrentUser() (models.Profile, bool) {
	if m.user == nil {
		return models.Profile{}, false
	}
	return *m.user, true
}

func (m *SessionManager) IsAuthenticated() bool {
	return m.user != nil
}

func (m *SessionManager) HasConfigKey() bool {
	return m.hasConfigKey
}

// clearSession deletes the session and key slots in one transaction.
func (m *SessionManager) clearSession(ctx context.Context) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, common.SessionKey); err != nil {
			return err
		}
		return repo.Delete(ctx, common.ConfigKeyKey)
	})
}

// StoredSlots lists the names of the slots currently present, sorted.
func (m *SessionManager) StoredSlots(ctx context.Context) ([]string, error) {
	pairs, err := m.repo().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	names := make([]string, 0, len(pairs))
	for k := range pairs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}

// loadUsers reads the user collection. A missing slot is an empty
// collection; an undecodable one is reported as common.ErrCorruptData.
func loadUsers(ctx context.Context, repo kv.Repository) ([]models.User, error) {
	raw, err := repo.Get(ctx, common.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("load users: %w: %v", common.ErrCorruptData, err)
	}
	return users, nil
}

func saveJSON(ctx context.Context, repo kv.Repository, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return repo.Set(ctx, key, data)
}
