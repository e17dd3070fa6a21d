package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignUpRequest struct {
	Email    string                 `json:"email" validate:"required,email"`
	Password string                 `json:"password" validate:"required,min=8"`
	Metadata map[string]interface{} `json:"metadata"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionUserDTO struct {
	Id        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	FullName  string                 `json:"full_name"`
	AvatarURL string                 `json:"avatar_url,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type SessionResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresAt   time.Time      `json:"expires_at"`
	User        SessionUserDTO `json:"user"`
}

type OAuthRedirectResponse struct {
	RedirectURL string `json:"redirect_url"`
}

// OAuthCallbackRequest is the return leg of the external redirect. The
// provider sends either a code or an error fragment, never both.
type OAuthCallbackRequest struct {
	Provider string `json:"provider" query:"provider" validate:"required,oneof=google facebook"`
	Code     string `json:"code" query:"code"`
	Error    string `json:"error" query:"error"`
	State    string `json:"state" query:"state"`
}

type ConfirmEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
