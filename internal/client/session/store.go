package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/logging"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

// Store owns the current session. It is safe for concurrent use.
type Store struct {
	auth Authenticator
	slot TokenSlot
	log  logging.Logger

	mu      sync.RWMutex
	current Session
	subs    map[int]func(Session)
	nextSub int
}

func NewStore(auth Authenticator, slot TokenSlot, log logging.Logger) *Store {
	if slot == nil {
		slot = NewMemorySlot()
	}
	if log == nil {
		log = logging.Discard()
	}
	return &Store{auth: auth, slot: slot, log: log, subs: map[int]func(Session){}}
}

// Init is the startup hook. Every run begins anonymous: whatever token a
// previous run left in the slot is discarded.
func (s *Store) Init(ctx context.Context) error {
	stale, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "token slot unreadable", "error", err)
	}
	if err := s.slot.Clear(ctx); err != nil {
		return fmt.Errorf("clear token slot: %w", err)
	}
	if stale != "" {
		s.log.Info(ctx, "discarded token from previous run")
	}
	s.set(Session{})
	return nil
}

// Login sends one request to the auth endpoint and, on success, stores the
// token and publishes the decoded session.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (Session, error) {
	if err := models.Validate(&creds); err != nil {
		return Session{}, err
	}
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}
	sess, err := Decode(token)
	if err != nil {
		return Session{}, err
	}
	if err := s.slot.Save(ctx, token); err != nil {
		return Session{}, fmt.Errorf("save token: %w", err)
	}
	s.log.Info(ctx, "logged in", "subject", sess.SubjectID, "admin", sess.IsAdmin)
	s.set(sess)
	return sess, nil
}

// Logout drops the session unconditionally. A failure to clear the slot is
// logged; the in-memory session is gone either way.
func (s *Store) Logout(ctx context.Context) {
	if err := s.slot.Clear(ctx); err != nil {
		s.log.Error(ctx, "clear token slot", "error", err)
	}
	s.set(Session{})
}

func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	return s.Current().Token
}

// Subscribe registers fn to be called after every session change. The
// returned func removes it.
func (s *Store) Subscribe(fn func(Session)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) set(sess Session) {
	s.mu.Lock()
	s.current = sess
	subs := make([]func(Session), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(sess)
	}
}
