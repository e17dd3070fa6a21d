package authstate

import (
	"context"
	"errors"
	"testing"
	"time"

	"fikrswap-academy-be/internal/identity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a hand-driven identity provider. Tests control when
// the initial fetch resolves and inject events directly into the
// subscribed handler, which makes fetch/event races deterministic.
type fakeProvider struct {
	handler func(identity.AuthEvent)

	session      *identity.Session
	sessionErr   error
	fetchGate    chan struct{}
	signInResp   *identity.Session
	signInErr    error
	signOutErr   error
	completeResp *identity.Session
	completeErr  error
	unsubscribed bool
}

func (p *fakeProvider) Subscribe(handler func(identity.AuthEvent)) identity.Unsubscribe {
	p.handler = handler
	return func() { p.unsubscribed = true }
}

func (p *fakeProvider) GetSession(ctx context.Context) (*identity.Session, error) {
	if p.fetchGate != nil {
		<-p.fetchGate
	}
	return p.session, p.sessionErr
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	return nil
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	return p.signInResp, p.signInErr
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	return p.signOutErr
}

func (p *fakeProvider) OAuthRedirectURL(providerName, state string) (string, error) {
	return "https://accounts.example.com/consent?state=" + state, nil
}

func (p *fakeProvider) CompleteOAuth(ctx context.Context, providerName, code string) (*identity.Session, error) {
	return p.completeResp, p.completeErr
}

func (p *fakeProvider) emit(kind identity.EventKind, session *identity.Session) {
	p.handler(identity.AuthEvent{Kind: kind, Session: session})
}

type recordingNotifier struct {
	notices []notifier.Notice
}

func (r *recordingNotifier) Notify(n notifier.Notice) { r.notices = append(r.notices, n) }

type recordingNavigator struct {
	paths []string
}

func (r *recordingNavigator) Navigate(path string) { r.paths = append(r.paths, path) }

func sessionFor(email string) *identity.Session {
	return &identity.Session{
		AccessToken: "token-" + email,
		ExpiresAt:   time.Now().Add(time.Hour),
		User: identity.UserProfile{
			Id:    uuid.New(),
			Email: email,
		},
	}
}

func newTestStore(p *fakeProvider) (*Store, *recordingNotifier, *recordingNavigator) {
	n := &recordingNotifier{}
	nav := &recordingNavigator{}
	return NewStore(p, n, nav, logger.NopLogger{}), n, nav
}

func TestInitializeStartsAuthenticating(t *testing.T) {
	store, _, _ := newTestStore(&fakeProvider{})
	assert.Equal(t, StatusAuthenticating, store.Status())
}

func TestInitializeNoSession(t *testing.T) {
	store, _, _ := newTestStore(&fakeProvider{})
	store.Initialize(context.Background())

	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
}

func TestInitializeWithExistingSession(t *testing.T) {
	p := &fakeProvider{session: sessionFor("learner@example.com")}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())

	assert.Equal(t, StatusAuthenticated, store.Status())
	require.NotNil(t, store.Session())
	assert.Equal(t, "learner@example.com", store.Session().User.Email)
}

// An event that lands while the initial fetch is still in flight must
// win over the fetch result, even when the fetch resolves later with
// staler data.
func TestEventDuringFetchWins(t *testing.T) {
	p := &fakeProvider{
		session:   nil, // fetch will report signed out
		fetchGate: make(chan struct{}),
	}
	store, _, _ := newTestStore(p)

	done := make(chan struct{})
	go func() {
		store.Initialize(context.Background())
		close(done)
	}()

	// Subscribe happens before the fetch, so the handler is available
	// while GetSession is blocked.
	require.Eventually(t, func() bool { return p.handler != nil }, time.Second, time.Millisecond)

	p.emit(identity.EventSignedIn, sessionFor("fresh@example.com"))
	assert.Equal(t, StatusAuthenticated, store.Status())

	// Release the stale fetch; it must not overwrite the event.
	close(p.fetchGate)
	<-done

	assert.Equal(t, StatusAuthenticated, store.Status())
	require.NotNil(t, store.Session())
	assert.Equal(t, "fresh@example.com", store.Session().User.Email)
}

func TestSignedOutEventClearsSession(t *testing.T) {
	p := &fakeProvider{session: sessionFor("learner@example.com")}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())
	require.Equal(t, StatusAuthenticated, store.Status())

	p.emit(identity.EventSignedOut, nil)

	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
}

func TestTokenRefreshReplacesSession(t *testing.T) {
	p := &fakeProvider{session: sessionFor("learner@example.com")}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())

	refreshed := sessionFor("learner@example.com")
	refreshed.AccessToken = "rotated"
	p.emit(identity.EventTokenRefreshed, refreshed)

	assert.Equal(t, StatusAuthenticated, store.Status())
	assert.Equal(t, "rotated", store.Session().AccessToken)
}

func TestSignInSuccess(t *testing.T) {
	p := &fakeProvider{signInResp: sessionFor("learner@example.com")}
	store, n, nav := newTestStore(p)
	store.Initialize(context.Background())

	err := store.SignIn(context.Background(), "learner@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, store.Status())
	require.NotEmpty(t, n.notices)
	assert.Equal(t, "Welcome back!", n.notices[len(n.notices)-1].Title)
	assert.Equal(t, []string{"/"}, nav.paths)
}

func TestSignInFailure(t *testing.T) {
	p := &fakeProvider{signInErr: errors.New("invalid email or password")}
	store, n, nav := newTestStore(p)
	store.Initialize(context.Background())

	err := store.SignIn(context.Background(), "learner@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
	require.NotEmpty(t, n.notices)
	last := n.notices[len(n.notices)-1]
	assert.Equal(t, "Sign in failed", last.Title)
	assert.Equal(t, notifier.SeverityError, last.Severity)
	assert.Empty(t, nav.paths)
}

func TestSignUpNavigatesToLogin(t *testing.T) {
	store, n, nav := newTestStore(&fakeProvider{})
	store.Initialize(context.Background())

	err := store.SignUp(context.Background(), "new@example.com", "secret", nil)

	require.NoError(t, err)
	// Sign-up never authenticates by itself; email confirmation comes first.
	assert.Equal(t, StatusUnauthenticated, store.Status())
	require.NotEmpty(t, n.notices)
	assert.Equal(t, "Account created!", n.notices[len(n.notices)-1].Title)
	assert.Equal(t, []string{"/login"}, nav.paths)
}

func TestSignOutAlwaysClears(t *testing.T) {
	p := &fakeProvider{
		session:    sessionFor("learner@example.com"),
		signOutErr: errors.New("provider unreachable"),
	}
	store, n, nav := newTestStore(p)
	store.Initialize(context.Background())
	require.Equal(t, StatusAuthenticated, store.Status())

	store.SignOut(context.Background())

	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
	require.NotEmpty(t, n.notices)
	assert.Equal(t, "Sign out failed", n.notices[len(n.notices)-1].Title)
	assert.Equal(t, []string{"/login"}, nav.paths)
}

func TestWaitSettled(t *testing.T) {
	p := &fakeProvider{fetchGate: make(chan struct{})}
	store, _, _ := newTestStore(p)

	go store.Initialize(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	// Still resolving; WaitSettled returns Authenticating on timeout.
	assert.Equal(t, StatusAuthenticating, store.WaitSettled(ctx))

	close(p.fetchGate)
	assert.Equal(t, StatusUnauthenticated, store.WaitSettled(context.Background()))
}

// Events that resolve after Close must not mutate dead state.
func TestStaleEventAfterClose(t *testing.T) {
	p := &fakeProvider{}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())

	store.Close()
	assert.True(t, p.unsubscribed)

	p.emit(identity.EventSignedIn, sessionFor("late@example.com"))

	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
}

func TestStaleFetchAfterClose(t *testing.T) {
	p := &fakeProvider{
		session:   sessionFor("late@example.com"),
		fetchGate: make(chan struct{}),
	}
	store, _, _ := newTestStore(p)

	done := make(chan struct{})
	go func() {
		store.Initialize(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool { return p.handler != nil }, time.Second, time.Millisecond)

	store.Close()
	close(p.fetchGate)
	<-done

	assert.NotEqual(t, StatusAuthenticated, store.Status())
	assert.Nil(t, store.Session())
}

// The callback reads Status right after the exchange, so the outcome
// must already be applied when CompleteOAuth returns. Relying on the
// provider's event stream here would race the async bus delivery.
func TestCompleteOAuthAppliesSynchronously(t *testing.T) {
	p := &fakeProvider{completeResp: sessionFor("oauth@example.com")}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())
	require.Equal(t, StatusUnauthenticated, store.Status())

	err := store.CompleteOAuth(context.Background(), "google", "code-123")

	require.NoError(t, err)
	assert.Equal(t, StatusAuthenticated, store.Status())
	require.NotNil(t, store.Session())
	assert.Equal(t, "oauth@example.com", store.Session().User.Email)
}

func TestCompleteOAuthFailure(t *testing.T) {
	p := &fakeProvider{completeErr: errors.New("exchange rejected")}
	store, _, _ := newTestStore(p)
	store.Initialize(context.Background())

	err := store.CompleteOAuth(context.Background(), "google", "bad-code")

	require.Error(t, err)
	assert.Equal(t, StatusUnauthenticated, store.Status())
	assert.Nil(t, store.Session())
}

// A successful exchange settles the store even when the exchange runs
// before the initial fetch resolves.
func TestCompleteOAuthSettlesBeforeFetch(t *testing.T) {
	p := &fakeProvider{
		fetchGate:    make(chan struct{}),
		completeResp: sessionFor("oauth@example.com"),
	}
	store, _, _ := newTestStore(p)

	done := make(chan struct{})
	go func() {
		store.Initialize(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool { return p.handler != nil }, time.Second, time.Millisecond)

	require.NoError(t, store.CompleteOAuth(context.Background(), "google", "code-123"))
	assert.Equal(t, StatusAuthenticated, store.WaitSettled(context.Background()))

	// The stale fetch result must not overwrite the exchange outcome.
	close(p.fetchGate)
	<-done
	assert.Equal(t, StatusAuthenticated, store.Status())
}

func TestSignInWithProviderReturnsConsentURL(t *testing.T) {
	store, _, _ := newTestStore(&fakeProvider{})

	url, err := store.SignInWithProvider("google")

	require.NoError(t, err)
	assert.Contains(t, url, "https://accounts.example.com/consent?state=")
}
