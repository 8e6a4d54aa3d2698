// Package session owns the current viewer identity: who is signed in, whether
// an auth operation is in flight, and the durable session record that survives
// process restarts.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/papecode/nfc-card-demo/internal/directory"
	"github.com/papecode/nfc-card-demo/internal/identity"
	"github.com/papecode/nfc-card-demo/internal/notify"
	"github.com/papecode/nfc-card-demo/internal/storage"
)

// StorageKey is the durable storage key holding the persisted session record.
const StorageKey = "nfc_card_manager/session"

// ErrAuthInFlight is returned when a login, registration or restore is
// attempted while another one is still running. Session state is untouched.
var ErrAuthInFlight = errors.New("session: auth operation already in flight")

// Session is a read-only snapshot of the viewer state.
type Session struct {
	Viewer          *identity.User `json:"viewer"`
	IsAuthenticated bool           `json:"is_authenticated"`
	IsLoading       bool           `json:"is_loading"`
}

// record is the persisted session shape. Anything stored that does not parse
// into this shape is treated as corrupt and discarded.
type record struct {
	ID    string        `json:"id"`
	Email string        `json:"email"`
	Name  string        `json:"name"`
	Role  identity.Role `json:"role"`
}

func (r record) valid() bool {
	return r.ID != "" && r.Email != "" && r.Role.Valid()
}

// Store is the single source of truth for the current viewer. At most one
// viewer is active at a time; switching viewers requires a logout or a fresh
// login overwriting the prior one.
type Store struct {
	mu       sync.Mutex
	viewer   *identity.User
	loading  bool
	inFlight bool

	dir      *directory.Directory
	kv       *storage.KV
	notifier notify.Notifier
	delay    time.Duration
	logger   zerolog.Logger
}

// NewStore creates a session store. The store reports loading until Restore
// has run, so navigations that race startup wait instead of redirecting.
func NewStore(dir *directory.Directory, kv *storage.KV, notifier notify.Notifier, delay time.Duration, logger zerolog.Logger) *Store {
	return &Store{
		loading:  true,
		dir:      dir,
		kv:       kv,
		notifier: notifier,
		delay:    delay,
		logger:   logger,
	}
}

// Snapshot returns the current viewer state. IsAuthenticated is derived from
// viewer presence and never stored independently.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var viewer *identity.User
	if s.viewer != nil {
		v := *s.viewer
		viewer = &v
	}
	return Session{
		Viewer:          viewer,
		IsAuthenticated: viewer != nil,
		IsLoading:       s.loading,
	}
}

// begin claims the single in-flight auth slot and raises the loading flag.
func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrAuthInFlight
	}
	s.inFlight = true
	s.loading = true
	return nil
}

// end releases the in-flight slot and always clears the loading flag.
func (s *Store) end() {
	s.mu.Lock()
	s.inFlight = false
	s.loading = false
	s.mu.Unlock()
}

// Restore adopts the persisted session record, if any. A present but
// unparseable or mis-shaped record is discarded silently and treated as no
// session. Restore emits no notification.
func (s *Store) Restore(ctx context.Context) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	raw, err := s.kv.Get(StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}

	var rec record
	if uerr := json.Unmarshal([]byte(raw), &rec); uerr != nil || !rec.valid() {
		s.logger.Debug().Err(uerr).Msg("Discarding corrupt session record")
		if derr := s.kv.Delete(StorageKey); derr != nil {
			s.logger.Warn().Err(derr).Msg("Failed to remove corrupt session record")
		}
		return nil
	}

	viewer := identity.User{ID: rec.ID, Email: rec.Email, Name: rec.Name, Role: rec.Role}
	s.setViewer(&viewer)
	s.logger.Info().Str("user_id", viewer.ID).Str("email", viewer.Email).Msg("Session restored")
	return nil
}

// Login resolves the viewer by case-insensitive email lookup against the
// directory. The password is accepted but not verified; the directory stands
// in for a backend that would perform the check. The boolean reports the
// domain outcome, the error only unexpected faults.
func (s *Store) Login(ctx context.Context, email, password string) (bool, error) {
	if err := s.begin(); err != nil {
		return false, err
	}
	defer s.end()

	if err := s.simulateRoundTrip(ctx); err != nil {
		return false, err
	}

	viewer, ok := s.dir.FindByEmail(email)
	if !ok {
		s.notifier.Notify(notify.Notification{
			Title:       "Login failed",
			Description: "Incorrect email or password",
			Variant:     notify.VariantDestructive,
		})
		return false, nil
	}

	if err := s.adopt(viewer); err != nil {
		return false, err
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Login successful",
		Description: "Welcome " + viewer.Name,
	})
	s.logger.Info().Str("user_id", viewer.ID).Str("email", viewer.Email).Msg("Viewer logged in")
	return true, nil
}

// Register creates a fresh identity and adopts it immediately: registration
// implies session start, with no separate verification step. Role defaults to
// user when empty. Fails only on a case-insensitive email conflict.
func (s *Store) Register(ctx context.Context, email, password, name string, role identity.Role) (bool, error) {
	if role == "" {
		role = identity.RoleUser
	}

	if err := s.begin(); err != nil {
		return false, err
	}
	defer s.end()

	if err := s.simulateRoundTrip(ctx); err != nil {
		return false, err
	}

	if s.dir.Exists(email) {
		s.notifier.Notify(notify.Notification{
			Title:       "Registration failed",
			Description: "An account with this email already exists",
			Variant:     notify.VariantDestructive,
		})
		return false, nil
	}

	viewer := identity.User{
		ID:        ulid.Make().String(),
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.dir.Add(viewer)

	if err := s.adopt(viewer); err != nil {
		return false, err
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Registration successful",
		Description: "Your account has been created",
	})
	s.logger.Info().Str("user_id", viewer.ID).Str("email", viewer.Email).Msg("Viewer registered")
	return true, nil
}

// Logout clears the viewer from memory and durable storage. Synchronous; no
// loading transition.
func (s *Store) Logout() error {
	s.setViewer(nil)
	if err := s.kv.Delete(StorageKey); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Logged out",
		Description: "You have been logged out",
	})
	s.logger.Info().Msg("Viewer logged out")
	return nil
}

// adopt persists the identity as the durable session record, then makes it
// the current viewer. Persist-first keeps storage and memory consistent when
// the write fails.
func (s *Store) adopt(viewer identity.User) error {
	raw, err := json.Marshal(record{
		ID:    viewer.ID,
		Email: viewer.Email,
		Name:  viewer.Name,
		Role:  viewer.Role,
	})
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := s.kv.Set(StorageKey, string(raw)); err != nil {
		return fmt.Errorf("persist session record: %w", err)
	}
	s.setViewer(&viewer)
	return nil
}

func (s *Store) setViewer(viewer *identity.User) {
	s.mu.Lock()
	s.viewer = viewer
	s.mu.Unlock()
}

// simulateRoundTrip stands in for the network call a real backend would see.
func (s *Store) simulateRoundTrip(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
