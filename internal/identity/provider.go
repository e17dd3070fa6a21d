package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventSignedIn       EventKind = "SIGNED_IN"
	EventSignedOut      EventKind = "SIGNED_OUT"
	EventTokenRefreshed EventKind = "TOKEN_REFRESHED"
)

// UserProfile is the identity attached to a session. Metadata carries
// whatever attributes the caller supplied at sign-up, untouched.
type UserProfile struct {
	Id        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	FullName  string                 `json:"full_name"`
	AvatarURL string                 `json:"avatar_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Session is the provider's proof of an authenticated identity. It is
// replaced wholesale on every auth event, never mutated in place.
type Session struct {
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	User        UserProfile `json:"user"`
}

// AuthEvent is one entry of the provider's push stream. Session is nil
// for SIGNED_OUT.
type AuthEvent struct {
	Kind    EventKind `json:"kind"`
	Session *Session  `json:"session"`
}

// Unsubscribe tears down an event subscription. Safe to call more than once.
type Unsubscribe func()

// Provider is the identity boundary. Consumers subscribe to the event
// stream before issuing GetSession so no transition is lost between the
// two calls.
type Provider interface {
	Subscribe(handler func(AuthEvent)) Unsubscribe
	GetSession(ctx context.Context) (*Session, error)

	SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error

	// OAuthRedirectURL builds the external provider's consent URL. The
	// external provider redirects back to the auth callback path.
	OAuthRedirectURL(providerName, state string) (string, error)
	// CompleteOAuth exchanges the callback code for a session. Failures
	// publish SIGNED_OUT so waiting consumers settle.
	CompleteOAuth(ctx context.Context, providerName, code string) (*Session, error)
}
