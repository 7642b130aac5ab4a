package policy

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/carstorage/internal/client/models"
	"github.com/dmitrijs2005/carstorage/internal/client/session"
	"github.com/dmitrijs2005/carstorage/internal/common"
)

// Selector holds the car scope picked by an admin. The first user-list load
// of a session defaults it to "all"; after that, and after any explicit
// Select, it is never changed implicitly.
type Selector struct {
	mu        sync.Mutex
	scope     string
	defaulted bool
}

func NewSelector() *Selector { return &Selector{} }

func (s *Selector) Scope() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scope
}

// Select sets the scope to "all" or a positive user id.
func (s *Selector) Select(scope string) error {
	if scope != common.ScopeAll {
		if _, ok := ParseScope(scope); !ok {
			return fmt.Errorf("%w: scope must be %q or a user id, got %q", common.ErrorValidation, common.ScopeAll, scope)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scope = scope
	s.defaulted = true
	return nil
}

// UsersLoaded applies the one-time default. It reports whether the scope
// changed.
func (s *Selector) UsersLoaded(sess session.Session) bool {
	if !sess.IsAdmin {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.defaulted {
		return false
	}
	s.scope = common.ScopeAll
	s.defaulted = true
	return true
}

// Reset forgets the selection. Call it whenever the session changes.
func (s *Selector) Reset(session.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scope = ""
	s.defaulted = false
}

// ProfileSelector is the user shown on the profile screen. It defaults once
// per session to the logged-in user, or the first listed user when the
// session has no subject.
type ProfileSelector struct {
	mu        sync.Mutex
	id        int64
	defaulted bool
}

func NewProfileSelector() *ProfileSelector { return &ProfileSelector{} }

func (p *ProfileSelector) Selected() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.id
}

func (p *ProfileSelector) Select(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = id
	p.defaulted = true
}

func (p *ProfileSelector) UsersLoaded(sess session.Session, users []models.User) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.defaulted {
		return false
	}
	switch {
	case sess.SubjectID != 0:
		p.id = sess.SubjectID
	case len(users) > 0:
		p.id = users[0].ID
	default:
		return false
	}
	p.defaulted = true
	return true
}

func (p *ProfileSelector) Reset(session.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.id = 0
	p.defaulted = false
}

// String renders the selected id the way it appears in the scope prompt.
func (p *ProfileSelector) String() string {
	id := p.Selected()
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
