package session

import (
	"sync"

	"github.com/sportlane/shopclient/pkg/api"
)

// Snapshot is a read-only copy of the session at one point in time
type Snapshot struct {
	User            *api.UserProfile
	AccessToken     string
	IsAuthenticated bool
}

// State holds the in-memory session: the authenticated flag, the cached
// access token and the user profile snapshot. It has a single writer
// (the guard and the auth service); everything else reads snapshots.
// IsAuthenticated is true iff the last transition was SetCredentials
// with a non-empty token; Clear always resets all fields together.
type State struct {
	mu       sync.RWMutex
	user     *api.UserProfile
	token    string
	authed   bool
	watchers []chan Snapshot
}

// NewState returns an empty, unauthenticated session state
func NewState() *State {
	return &State{}
}

// SetCredentials records a successful sign-in or sign-up
func (s *State) SetCredentials(user *api.UserProfile, accessToken string) {
	s.mu.Lock()
	s.user = user
	s.token = accessToken
	s.authed = accessToken != ""
	s.notifyLocked()
	s.mu.Unlock()
}

// SetAccessToken replaces the cached access token after a refresh.
// The authenticated flag and the user are untouched.
func (s *State) SetAccessToken(accessToken string) {
	s.mu.Lock()
	s.token = accessToken
	s.notifyLocked()
	s.mu.Unlock()
}

// SetUser updates the profile snapshot
func (s *State) SetUser(user *api.UserProfile) {
	s.mu.Lock()
	s.user = user
	s.notifyLocked()
	s.mu.Unlock()
}

// Clear wipes the session: user, token and flag together (logout)
func (s *State) Clear() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.authed = false
	s.notifyLocked()
	s.mu.Unlock()
}

// Snapshot returns a read-only copy of the current session
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// AccessToken returns the cached access token, "" if none
func (s *State) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsAuthenticated reports whether the session is active
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// Watch returns a channel receiving a snapshot on every transition.
// The channel is buffered with the latest snapshot; a slow consumer
// only ever misses intermediate states, never the final one.
func (s *State) Watch() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()
	return ch
}

func (s *State) snapshotLocked() Snapshot {
	var user *api.UserProfile
	if s.user != nil {
		u := *s.user
		user = &u
	}
	return Snapshot{
		User:            user,
		AccessToken:     s.token,
		IsAuthenticated: s.authed,
	}
}

func (s *State) notifyLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.watchers {
		// Replace a pending snapshot instead of blocking the writer
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
