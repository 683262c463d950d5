package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"bytebite/storefront/internal/checkout"
	"bytebite/storefront/internal/registration"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const SessionCookie = "bytebite_session"

// Notice is a one-shot message shown on the registration page. After a
// rejected submission it also carries the input, so the form can be refilled.
type Notice struct {
	Message    string
	Success    bool
	Meal       registration.Form
	Restaurant RestaurantForm
}

// RestaurantForm is the raw restaurant registration input.
type RestaurantForm struct {
	Name string
	Area string
}

type session struct {
	controller *checkout.Controller
	notice     *Notice
	lastSeen   time.Time
}

// SessionStore keeps one checkout controller per browser.
type SessionStore struct {
	mu            sync.RWMutex
	sessions      map[string]*session
	ttl           time.Duration
	newController func() *checkout.Controller
	now           func() time.Time
}

func NewSessionStore(ttl time.Duration, newController func() *checkout.Controller) *SessionStore {
	return &SessionStore{
		sessions:      make(map[string]*session),
		ttl:           ttl,
		newController: newController,
		now:           time.Now,
	}
}

// Controller returns the caller's controller, starting a session when the
// request carries no valid cookie.
func (s *SessionStore) Controller(w http.ResponseWriter, r *http.Request) *checkout.Controller {
	return s.session(w, r).controller
}

func (s *SessionStore) session(w http.ResponseWriter, r *http.Request) *session {
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		s.mu.RLock()
		sess, ok := s.sessions[cookie.Value]
		s.mu.RUnlock()
		if ok {
			s.mu.Lock()
			sess.lastSeen = s.now()
			s.mu.Unlock()
			return sess
		}
	}

	id := uuid.NewString()
	sess := &session{controller: s.newController(), lastSeen: s.now()}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	log.Debug().Str("session", id).Msg("session started")
	return sess
}

func (s *SessionStore) SetNotice(w http.ResponseWriter, r *http.Request, n Notice) {
	sess := s.session(w, r)
	s.mu.Lock()
	sess.notice = &n
	s.mu.Unlock()
}

// TakeNotice returns the pending notice, if any, and forgets it.
func (s *SessionStore) TakeNotice(w http.ResponseWriter, r *http.Request) *Notice {
	sess := s.session(w, r)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := sess.notice
	sess.notice = nil
	return n
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions idle for longer than the TTL.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Info().Int("removed", n).Int("active", s.Len()).Msg("expired sessions swept")
			}
		}
	}
}
