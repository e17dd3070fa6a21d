package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type UserStatus string

const (
	UserRoleLearner    UserRole = "learner"
	UserRoleInstructor UserRole = "instructor"

	UserStatusPending UserStatus = "pending"
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

type User struct {
	Id              uuid.UUID
	Email           string
	PasswordHash    *string
	FullName        string
	Role            UserRole
	Status          UserStatus
	EmailVerified   bool
	EmailVerifiedAt *time.Time
	AvatarURL       *string
	// Metadata carries arbitrary profile attributes supplied at sign-up
	// (the identity provider treats them as opaque).
	Metadata  map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PasswordResetToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

type UserProvider struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ProviderName   string
	ProviderUserId string
	AvatarURL      string
	CreatedAt      time.Time
}

type EmailVerificationToken struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
