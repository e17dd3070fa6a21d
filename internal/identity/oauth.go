package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fikrswap-academy-be/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
	"golang.org/x/oauth2/google"
)

// ExternalUser is the normalized profile an external OAuth provider
// returns for the authenticated party.
type ExternalUser struct {
	ProviderUserId string
	Email          string
	FullName       string
	AvatarURL      string
}

type oauthProvider struct {
	config      *oauth2.Config
	userInfoURL string
	parse       func([]byte) (*ExternalUser, error)
}

// OAuthManager holds one oauth2.Config per supported external provider
// and knows how to fetch the authenticated profile after code exchange.
type OAuthManager struct {
	providers map[string]oauthProvider
}

func NewOAuthManager(cfg *config.Config) *OAuthManager {
	// The external provider echoes the redirect URL back untouched, so
	// the provider name rides along as a query param; the callback needs
	// it to pick the right config for the code exchange.
	callbackURL := strings.TrimRight(cfg.App.ClientURL, "/") + cfg.OAuth.CallbackPath

	return &OAuthManager{
		providers: map[string]oauthProvider{
			"google": {
				config: &oauth2.Config{
					ClientID:     cfg.OAuth.GoogleClientID,
					ClientSecret: cfg.OAuth.GoogleClientSecret,
					RedirectURL:  callbackURL + "?provider=google",
					Scopes:       []string{"openid", "email", "profile"},
					Endpoint:     google.Endpoint,
				},
				userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
				parse:       parseGoogleUser,
			},
			"facebook": {
				config: &oauth2.Config{
					ClientID:     cfg.OAuth.FacebookClientID,
					ClientSecret: cfg.OAuth.FacebookClientSecret,
					RedirectURL:  callbackURL + "?provider=facebook",
					Scopes:       []string{"email", "public_profile"},
					Endpoint:     facebook.Endpoint,
				},
				userInfoURL: "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)",
				parse:       parseFacebookUser,
			},
		},
	}
}

func (m *OAuthManager) RedirectURL(providerName, state string) (string, error) {
	p, ok := m.providers[providerName]
	if !ok {
		return "", fmt.Errorf("unsupported oauth provider: %s", providerName)
	}
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// FetchUser exchanges the callback code and pulls the provider's profile.
func (m *OAuthManager) FetchUser(ctx context.Context, providerName, code string) (*ExternalUser, error) {
	p, ok := m.providers[providerName]
	if !ok {
		return nil, fmt.Errorf("unsupported oauth provider: %s", providerName)
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("fetching oauth profile failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth profile endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return p.parse(body)
}

func parseGoogleUser(body []byte) (*ExternalUser, error) {
	var payload struct {
		Id      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &ExternalUser{
		ProviderUserId: payload.Id,
		Email:          payload.Email,
		FullName:       payload.Name,
		AvatarURL:      payload.Picture,
	}, nil
}

func parseFacebookUser(body []byte) (*ExternalUser, error) {
	var payload struct {
		Id      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return &ExternalUser{
		ProviderUserId: payload.Id,
		Email:          payload.Email,
		FullName:       payload.Name,
		AvatarURL:      payload.Picture.Data.URL,
	}, nil
}
