package authstate

import (
	"context"
	"sync"

	"fikrswap-academy-be/internal/identity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnauthenticated Status = "unauthenticated"
	StatusAuthenticating  Status = "authenticating"
	StatusAuthenticated   Status = "authenticated"
)

// Navigator is the navigation surface the store drives after auth
// outcomes. The router owns the actual transition.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Store is the process-wide authority on who is signed in. It is the
// single writer of the status/session pair; any number of readers may
// call Status and Session concurrently.
//
// Initialize subscribes to the provider's event stream before issuing
// the initial session fetch, so a transition delivered while the fetch
// is in flight is never lost. The fetch result only seeds state when no
// event has been applied first.
type Store struct {
	provider  identity.Provider
	notifier  notifier.Notifier
	navigator Navigator
	logger    logger.ILogger

	mu           sync.RWMutex
	status       Status
	session      *identity.Session
	eventApplied bool
	closed       bool
	unsubscribe  identity.Unsubscribe

	settleOnce sync.Once
	settled    chan struct{}
}

func NewStore(provider identity.Provider, n notifier.Notifier, nav Navigator, log logger.ILogger) *Store {
	return &Store{
		provider:  provider,
		notifier:  n,
		navigator: nav,
		logger:    log,
		status:    StatusAuthenticating,
		settled:   make(chan struct{}),
	}
}

// Initialize wires the store to the provider. Called once at startup;
// the subscription lives until Close.
func (s *Store) Initialize(ctx context.Context) {
	s.unsubscribe = s.provider.Subscribe(s.applyEvent)

	session, err := s.provider.GetSession(ctx)

	s.mu.Lock()
	defer func() {
		s.mu.Unlock()
		s.markSettled()
	}()

	if s.closed {
		return
	}
	// An event that raced the fetch already carries fresher state.
	if s.eventApplied {
		return
	}

	if err != nil {
		s.logger.Warn("authstate", "initial session fetch failed", map[string]interface{}{
			"error": err.Error(),
		})
		s.setLocked(nil)
		return
	}
	s.setLocked(session)
}

func (s *Store) applyEvent(event identity.AuthEvent) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.eventApplied = true
	s.setLocked(event.Session)
	s.mu.Unlock()
	s.markSettled()
}

// setLocked replaces the session wholesale. Caller holds mu.
func (s *Store) setLocked(session *identity.Session) {
	s.session = session
	if session != nil {
		s.status = StatusAuthenticated
	} else {
		s.status = StatusUnauthenticated
	}
}

func (s *Store) markSettled() {
	s.settleOnce.Do(func() { close(s.settled) })
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) Session() *identity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// WaitSettled blocks until the status has left Authenticating at least
// once, or the context is done. Lets startup-ordered consumers defer
// until the initial resolution lands.
func (s *Store) WaitSettled(ctx context.Context) Status {
	select {
	case <-s.settled:
	case <-ctx.Done():
	}
	return s.Status()
}

// SignUp delegates to the provider. Success leaves the status untouched
// and sends the learner to the login view to confirm their email.
func (s *Store) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	err := s.provider.SignUp(ctx, email, password, metadata)
	if s.isClosed() {
		return err
	}
	if err != nil {
		s.notifier.Notify(notifier.Notice{
			Title:       "Sign up failed",
			Description: err.Error(),
			Severity:    notifier.SeverityError,
		})
		return err
	}

	s.notifier.Notify(notifier.Notice{
		Title:       "Account created!",
		Description: "Please check your email to verify your account.",
		Severity:    notifier.SeveritySuccess,
	})
	s.navigator.Navigate("/login")
	return nil
}

func (s *Store) SignIn(ctx context.Context, email, password string) error {
	session, err := s.provider.SignIn(ctx, email, password)
	if s.isClosed() {
		return err
	}
	if err != nil {
		s.mu.Lock()
		s.setLocked(nil)
		s.mu.Unlock()
		s.markSettled()
		s.notifier.Notify(notifier.Notice{
			Title:       "Sign in failed",
			Description: err.Error(),
			Severity:    notifier.SeverityError,
		})
		return err
	}

	s.mu.Lock()
	s.eventApplied = true
	s.setLocked(session)
	s.mu.Unlock()
	s.markSettled()

	s.notifier.Notify(notifier.Notice{
		Title:    "Welcome back!",
		Severity: notifier.SeveritySuccess,
	})
	s.navigator.Navigate("/")
	return nil
}

// SignInWithProvider starts the redirect-based OAuth flow. The session
// arrives later on the event stream once the external provider redirects
// back to the auth callback.
func (s *Store) SignInWithProvider(providerName string) (string, error) {
	state := uuid.New().String()
	url, err := s.provider.OAuthRedirectURL(providerName, state)
	if err != nil {
		s.notifier.Notify(notifier.Notice{
			Title:       "Sign in failed",
			Description: err.Error(),
			Severity:    notifier.SeverityError,
		})
		return "", err
	}
	return url, nil
}

// CompleteOAuth exchanges the callback code and applies the outcome to
// the store synchronously, the way SignIn does, so the caller reads a
// decided status immediately instead of racing the event stream. The
// provider still publishes the matching event for other subscribers.
func (s *Store) CompleteOAuth(ctx context.Context, providerName, code string) error {
	session, err := s.provider.CompleteOAuth(ctx, providerName, code)
	if s.isClosed() {
		return err
	}
	if err != nil {
		s.mu.Lock()
		s.eventApplied = true
		s.setLocked(nil)
		s.mu.Unlock()
		s.markSettled()
		return err
	}

	s.mu.Lock()
	s.eventApplied = true
	s.setLocked(session)
	s.mu.Unlock()
	s.markSettled()
	return nil
}

// SignOut is best effort: a provider failure is surfaced, but local
// state is always cleared so the UI never shows a stale session.
func (s *Store) SignOut(ctx context.Context) {
	err := s.provider.SignOut(ctx)
	if s.isClosed() {
		return
	}
	if err != nil {
		s.notifier.Notify(notifier.Notice{
			Title:       "Sign out failed",
			Description: err.Error(),
			Severity:    notifier.SeverityError,
		})
	}

	s.mu.Lock()
	s.eventApplied = true
	s.setLocked(nil)
	s.mu.Unlock()
	s.markSettled()

	s.navigator.Navigate("/login")
}

// Close tears down the subscription. Async resolutions landing after
// Close are ignored rather than applied to dead state.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	s.markSettled()
}

func (s *Store) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
