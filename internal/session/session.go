// internal/session/session.go
//
// userform – visitor sessions.
//
// Context
//   Each browser visitor gets one registration.Form that lives for as long
//   as the visitor keeps interacting, the server-side analogue of a page
//   view.  Sessions are held in an in-memory go-cache with a sliding idle
//   TTL and addressed by a random UUID stored in an HttpOnly cookie.
//   Nothing survives a restart.
//
//   registration.Form is single-threaded, so Session.Do serialises every
//   access for one visitor.  Different visitors proceed in parallel.
//
//------------------------------------------------------------------------------

package session

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/yanizio/userform/internal/metrics"
	"github.com/yanizio/userform/internal/registration"
)

// ErrNotFound is returned when an ID is unknown or has expired.
var ErrNotFound = errors.New("session not found")

// Session pairs a visitor ID with that visitor's form.
type Session struct {
	ID string

	mu   sync.Mutex
	form *registration.Form
}

// Do runs fn with exclusive access to the session's form.
func (s *Session) Do(fn func(*registration.Form)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.form)
}

// Store holds live sessions.
type Store struct {
	cache      *gocache.Cache
	cookieName string
}

// NewStore returns a Store whose sessions expire after idleTTL without
// activity.  Expired entries are swept every cleanup interval.
//
// Sessions are never deleted explicitly, so OnEvicted only fires for
// expired entries.
func NewStore(cookieName string, idleTTL, cleanup time.Duration) *Store {
	c := gocache.New(idleTTL, cleanup)
	c.OnEvicted(func(string, any) {
		metrics.ActiveSessions.Dec()
		metrics.SessionEvictTotal.Inc()
	})
	return &Store{cache: c, cookieName: cookieName}
}

// New creates and stores a fresh session.
func (st *Store) New() *Session {
	s := &Session{
		ID:   uuid.NewString(),
		form: registration.NewForm(),
	}
	st.cache.SetDefault(s.ID, s)
	metrics.ActiveSessions.Inc()
	return s
}

// Get returns the session for id and restarts its idle timer.
func (st *Store) Get(id string) (*Session, error) {
	v, ok := st.cache.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	s := v.(*Session)
	st.cache.SetDefault(id, s) // slide expiry
	return s, nil
}

// Len reports the number of stored sessions, including expired ones not yet
// swept.
func (st *Store) Len() int { return st.cache.ItemCount() }

// Peek returns the caller's live session without creating one.  Read-only
// handlers use it so cookieless clients do not fill the store.
func (st *Store) Peek(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(st.cookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}
	s, err := st.Get(c.Value)
	if err != nil {
		return nil, false
	}
	return s, true
}

// Load returns the caller's session, creating one and setting the cookie when
// the request carries none or an expired ID.
func (st *Store) Load(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(st.cookieName); err == nil && c.Value != "" {
		if s, err := st.Get(c.Value); err == nil {
			return s
		}
	}

	s := st.New()
	http.SetCookie(w, &http.Cookie{
		Name:     st.cookieName,
		Value:    s.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}
