package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"fikrswap-academy-be/internal/authstate"
	"fikrswap-academy-be/internal/identity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/notifier"
	"fikrswap-academy-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callbackProvider drives the store during the OAuth return leg. Only
// GetSession and CompleteOAuth matter here; the rest is inert.
type callbackProvider struct {
	completeResp     *identity.Session
	completeErr      error
	completeProvider string
}

func (p *callbackProvider) Subscribe(handler func(identity.AuthEvent)) identity.Unsubscribe {
	return func() {}
}

func (p *callbackProvider) GetSession(ctx context.Context) (*identity.Session, error) {
	return nil, nil
}

func (p *callbackProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	return nil
}

func (p *callbackProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	return nil, errors.New("not wired")
}

func (p *callbackProvider) SignOut(ctx context.Context) error { return nil }

func (p *callbackProvider) OAuthRedirectURL(providerName, state string) (string, error) {
	return "", errors.New("not wired")
}

func (p *callbackProvider) CompleteOAuth(ctx context.Context, providerName, code string) (*identity.Session, error) {
	p.completeProvider = providerName
	return p.completeResp, p.completeErr
}

type fakeAccounts struct{}

func (fakeAccounts) ConfirmEmail(ctx context.Context, token string) error { return nil }

func (fakeAccounts) RequestPasswordReset(ctx context.Context, email string) error { return nil }

func (fakeAccounts) ResetPassword(ctx context.Context, token, password string) error { return nil }

func newCallbackApp(t *testing.T, p *callbackProvider) *fiber.App {
	t.Helper()
	store := authstate.NewStore(p, notifier.Nop{}, authstate.NavigatorFunc(func(string) {}), logger.NopLogger{})
	store.Initialize(context.Background())
	t.Cleanup(store.Close)

	c := NewAuthController(store, fakeAccounts{})
	app := fiber.New()
	app.Get("/auth-callback", c.AuthCallback)
	return app
}

func decodeCallback(t *testing.T, resp io.Reader) (redirect string, errText string) {
	t.Helper()
	var envelope serverutils.Response
	require.NoError(t, json.NewDecoder(resp).Decode(&envelope))
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok, "data must be an object")
	redirect, _ = data["redirect"].(string)
	errText, _ = data["error"].(string)
	return redirect, errText
}

func TestAuthCallbackSuccessfulExchange(t *testing.T) {
	p := &callbackProvider{
		completeResp: &identity.Session{
			AccessToken: "token",
			ExpiresAt:   time.Now().Add(time.Hour),
			User: identity.UserProfile{
				Id:    uuid.New(),
				Email: "oauth@example.com",
			},
		},
	}
	app := newCallbackApp(t, p)

	req := httptest.NewRequest("GET", "/auth-callback?provider=google&code=ok&state=abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	redirect, errText := decodeCallback(t, resp.Body)
	assert.Equal(t, "/", redirect, "a successful exchange lands on home")
	assert.Empty(t, errText)
	assert.Equal(t, "google", p.completeProvider, "provider from the query reaches the exchange")
}

func TestAuthCallbackFailedExchange(t *testing.T) {
	p := &callbackProvider{completeErr: errors.New("exchange rejected")}
	app := newCallbackApp(t, p)

	req := httptest.NewRequest("GET", "/auth-callback?provider=google&code=bad", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	redirect, errText := decodeCallback(t, resp.Body)
	assert.Equal(t, "/login", redirect)
	assert.Equal(t, "exchange rejected", errText)
}

func TestAuthCallbackErrorFragmentSkipsExchange(t *testing.T) {
	p := &callbackProvider{completeResp: &identity.Session{AccessToken: "token"}}
	app := newCallbackApp(t, p)

	req := httptest.NewRequest("GET", "/auth-callback?provider=google&error=access_denied", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	redirect, errText := decodeCallback(t, resp.Body)
	assert.Equal(t, "/login", redirect)
	assert.Equal(t, "access_denied", errText)
	assert.Empty(t, p.completeProvider, "no code exchange on an error fragment")
}
