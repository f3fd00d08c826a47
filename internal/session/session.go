// Package session derives the signed-in state of the console from the
// auction API. It is a pure state layer: no terminal I/O happens here, the
// command and TUI layers only render what this package decides.
package session

import (
	"context"
	"sync"

	"github.com/cricbid/auctionctl/internal/auction"
	"github.com/cricbid/auctionctl/internal/log"
)

// State is the authentication state of the console
type State int

const (
	// StateAnonymous means no usable session; the login screen is shown
	StateAnonymous State = iota
	// StateUser is an authenticated non-admin bidder
	StateUser
	// StateAdmin is an authenticated auction administrator
	StateAdmin
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateUser:
		return "user"
	case StateAdmin:
		return "admin"
	default:
		return "anonymous"
	}
}

// Screen identifies the front-end surface a state maps to
type Screen int

const (
	// ScreenLogin is the credential prompt
	ScreenLogin Screen = iota
	// ScreenModeSelect offers bidding, registration, or watch mode
	ScreenModeSelect
	// ScreenPlayerRegistration is the public player sign-up form
	ScreenPlayerRegistration
	// ScreenBidding is the bidder console
	ScreenBidding
	// ScreenAdminConsole is the admin console with auction controls
	ScreenAdminConsole
)

// ScreenFor maps an authentication state to its landing screen
func ScreenFor(s State) Screen {
	switch s {
	case StateAdmin:
		return ScreenAdminConsole
	case StateUser:
		return ScreenModeSelect
	default:
		return ScreenLogin
	}
}

// Session tracks the current user and watch mode for one console run
type Session struct {
	api    *auction.Client
	logger *log.Logger

	mu        sync.Mutex
	state     State
	user      *auction.User
	watchMode bool
}

// New creates a session bound to an API client
func New(api *auction.Client, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Session{api: api, logger: logger}
}

// Bootstrap decides the authentication state on startup.
//
// With no stored credentials the session is anonymous and no authenticated
// call is made. Otherwise one whoami call (with the pipeline's transparent
// refresh behind it) decides: a failure of any kind clears the stored tokens
// and degrades to anonymous rather than propagating.
func (s *Session) Bootstrap(ctx context.Context) State {
	if !s.api.HasSession() {
		s.setUser(nil)
		return StateAnonymous
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.WithError(err).Debug("whoami failed, degrading to anonymous")
		_ = s.api.Logout()
		s.setUser(nil)
		return StateAnonymous
	}

	s.setUser(user)
	return s.State()
}

// Login authenticates and re-runs the bootstrap. On failure the session
// stays anonymous and the server-provided reason is returned.
func (s *Session) Login(ctx context.Context, email, password string) (State, error) {
	if err := s.api.Login(ctx, email, password); err != nil {
		s.setUser(nil)
		return StateAnonymous, err
	}
	return s.Bootstrap(ctx), nil
}

// Logout clears credentials and forces the anonymous state
func (s *Session) Logout() error {
	err := s.api.Logout()
	s.setUser(nil)
	return err
}

func (s *Session) setUser(u *auction.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
	switch {
	case u == nil:
		s.state = StateAnonymous
	case u.IsAdmin:
		s.state = StateAdmin
	default:
		s.state = StateUser
	}
}

// State returns the current authentication state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User returns the current user, or nil when anonymous
func (s *Session) User() *auction.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// SetWatchMode toggles the read-only viewing state
func (s *Session) SetWatchMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchMode = on
}

// WatchMode reports whether the session is in read-only viewing mode
func (s *Session) WatchMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchMode
}

// TeamSelection returns the team selector's value and whether it is editable.
// A non-admin bound to a team is locked to that team; admins and unbound
// users keep free selection.
func (s *Session) TeamSelection() (value string, editable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil && !s.user.IsAdmin && s.user.TeamID != "" {
		return s.user.TeamID, false
	}
	return "", true
}

// CanBid reports whether bid controls are enabled: a user must be signed in
// and the console must not be in watch mode.
func (s *Session) CanBid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && !s.watchMode
}
