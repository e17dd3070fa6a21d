package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"fikrswap-academy-be/internal/config"
	"fikrswap-academy-be/internal/entity"
	"fikrswap-academy-be/internal/pkg/logger"
	"fikrswap-academy-be/internal/pkg/mailer"
	"fikrswap-academy-be/internal/repository/specification"
	"fikrswap-academy-be/internal/repository/unitofwork"
	"fikrswap-academy-be/pkg/events"
	pktNats "fikrswap-academy-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotVerified   = errors.New("email not verified. please check your inbox for the confirmation link")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrOAuthOnlyAccount   = errors.New("account registered via an external provider")
)

// LocalProvider is the in-house identity provider: password accounts with
// email confirmation, JWT session minting, and redirect-based OAuth for
// external providers. Every session transition is pushed on the auth
// event bus before the originating call returns.
type LocalProvider struct {
	uowFactory     unitofwork.RepositoryFactory
	bus            *EventBus
	oauth          *OAuthManager
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	cfg            *config.Config
	logger         logger.ILogger

	mu      sync.RWMutex
	current *Session
}

func NewLocalProvider(
	uowFactory unitofwork.RepositoryFactory,
	bus *EventBus,
	oauth *OAuthManager,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	cfg *config.Config,
	log logger.ILogger,
) *LocalProvider {
	return &LocalProvider{
		uowFactory:     uowFactory,
		bus:            bus,
		oauth:          oauth,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		cfg:            cfg,
		logger:         log,
	}
}

func (p *LocalProvider) Subscribe(handler func(AuthEvent)) Unsubscribe {
	return p.bus.Subscribe(handler)
}

// GetSession returns the current session, or nil when signed out or the
// session has expired.
func (p *LocalProvider) GetSession(ctx context.Context) (*Session, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return nil, nil
	}
	if time.Now().After(p.current.ExpiresAt) {
		return nil, nil
	}
	session := *p.current
	return &session, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string, metadata map[string]interface{}) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashStr := string(hash)

	fullName, _ := metadata["full_name"].(string)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         email,
		FullName:      fullName,
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleLearner,
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		Metadata:      metadata,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// User + confirmation token created atomically.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	go func() {
		if emailErr := p.emailService.SendConfirmation(user.Email, verificationToken.Token); emailErr != nil {
			p.logger.Error("identity", "failed to send confirmation email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr.Error(),
			})
		}
	}()

	p.publishDomainEvent(ctx, events.TypeUserSignedUp, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
	})

	return nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.PasswordHash == nil {
		return nil, ErrOAuthOnlyAccount
	}

	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, ErrAccountBlocked
	}

	session, err := p.mintSession(user)
	if err != nil {
		return nil, err
	}

	p.setCurrent(session)
	p.publishAuthEvent(AuthEvent{Kind: EventSignedIn, Session: session})
	p.publishDomainEvent(ctx, events.TypeUserSignedIn, map[string]interface{}{
		"user_id": user.Id,
		"email":   user.Email,
		"time":    time.Now().Format(time.RFC822),
	})

	return session, nil
}

// SignOut clears the current session. The cleared state is pushed on the
// event stream even if no session was active.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	p.setCurrent(nil)
	p.publishAuthEvent(AuthEvent{Kind: EventSignedOut, Session: nil})
	return nil
}

func (p *LocalProvider) OAuthRedirectURL(providerName, state string) (string, error) {
	return p.oauth.RedirectURL(providerName, state)
}

func (p *LocalProvider) CompleteOAuth(ctx context.Context, providerName, code string) (*Session, error) {
	external, err := p.oauth.FetchUser(ctx, providerName, code)
	if err != nil {
		// Push a signed-out event so consumers waiting on the callback settle.
		p.publishAuthEvent(AuthEvent{Kind: EventSignedOut, Session: nil})
		return nil, err
	}

	user, err := p.findOrCreateOAuthUser(ctx, providerName, external)
	if err != nil {
		p.publishAuthEvent(AuthEvent{Kind: EventSignedOut, Session: nil})
		return nil, err
	}

	session, err := p.mintSession(user)
	if err != nil {
		p.publishAuthEvent(AuthEvent{Kind: EventSignedOut, Session: nil})
		return nil, err
	}

	p.setCurrent(session)
	p.publishAuthEvent(AuthEvent{Kind: EventSignedIn, Session: session})
	p.publishDomainEvent(ctx, events.TypeUserSignedIn, map[string]interface{}{
		"user_id":  user.Id,
		"email":    user.Email,
		"provider": providerName,
	})

	return session, nil
}

// Refresh re-mints the access token for the current session and publishes
// TOKEN_REFRESHED. No-op when signed out.
func (p *LocalProvider) Refresh(ctx context.Context) (*Session, error) {
	p.mu.RLock()
	current := p.current
	p.mu.RUnlock()
	if current == nil {
		return nil, nil
	}

	uow := p.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: current.User.Id})
	if err != nil || user == nil {
		return nil, errors.New("session user no longer exists")
	}

	session, err := p.mintSession(user)
	if err != nil {
		return nil, err
	}

	p.setCurrent(session)
	p.publishAuthEvent(AuthEvent{Kind: EventTokenRefreshed, Session: session})
	return session, nil
}

// ConfirmEmail activates the account behind a confirmation token.
func (p *LocalProvider) ConfirmEmail(ctx context.Context, token string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx, specification.ByToken{Token: token})
	if err != nil {
		return err
	}
	if tokenEntity == nil {
		return errors.New("invalid confirmation token")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("confirmation token expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ActivateUser(ctx, tokenEntity.UserId); err != nil {
		return err
	}
	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

// RequestPasswordReset is deliberately quiet about unknown emails.
func (p *LocalProvider) RequestPasswordReset(ctx context.Context, email string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return err
	}

	go func() {
		if emailErr := p.emailService.SendResetToken(user.Email, resetToken.Token); emailErr != nil {
			p.logger.Error("identity", "failed to send reset email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr.Error(),
			})
		}
	}()

	return nil
}

func (p *LocalProvider) ResetPassword(ctx context.Context, token, newPassword string) error {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	tokenEntity, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: token})
	if err != nil {
		return err
	}
	if tokenEntity == nil || tokenEntity.Used {
		return errors.New("invalid reset token")
	}
	if time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("reset token expired")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, tokenEntity.UserId, string(hash)); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkTokenUsed(ctx, tokenEntity.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (p *LocalProvider) findOrCreateOAuthUser(ctx context.Context, providerName string, external *ExternalUser) (*entity.User, error) {
	uow := p.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: external.Email})
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	if external.Email == "" {
		return nil, fmt.Errorf("provider %s returned no email address", providerName)
	}

	avatar := external.AvatarURL
	user = &entity.User{
		Id:            uuid.New(),
		Email:         external.Email,
		FullName:      external.FullName,
		Role:          entity.UserRoleLearner,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
		AvatarURL:     &avatar,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	provider := &entity.UserProvider{
		Id:             uuid.New(),
		UserId:         user.Id,
		ProviderName:   providerName,
		ProviderUserId: external.ProviderUserId,
		AvatarURL:      external.AvatarURL,
		CreatedAt:      time.Now(),
	}
	if err := uow.UserRepository().SaveUserProvider(ctx, provider); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return user, nil
}

func (p *LocalProvider) mintSession(user *entity.User) (*Session, error) {
	ttl := time.Duration(p.cfg.Auth.AccessTokenTTLHours) * time.Hour
	expiresAt := time.Now().Add(ttl)

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(p.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, err
	}

	var avatarURL string
	if user.AvatarURL != nil {
		avatarURL = *user.AvatarURL
	}

	return &Session{
		AccessToken: signedToken,
		ExpiresAt:   expiresAt,
		User: UserProfile{
			Id:        user.Id,
			Email:     user.Email,
			FullName:  user.FullName,
			AvatarURL: avatarURL,
			Metadata:  user.Metadata,
		},
	}, nil
}

func (p *LocalProvider) setCurrent(session *Session) {
	p.mu.Lock()
	p.current = session
	p.mu.Unlock()
}

func (p *LocalProvider) publishAuthEvent(event AuthEvent) {
	if err := p.bus.Publish(event); err != nil {
		p.logger.Error("identity", "failed to publish auth event", map[string]interface{}{
			"kind":  string(event.Kind),
			"error": err.Error(),
		})
	}
}

func (p *LocalProvider) publishDomainEvent(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.eventPublisher == nil {
		return
	}
	if err := p.eventPublisher.Publish(ctx, events.New(eventType, data)); err != nil {
		p.logger.Warn("identity", "failed to publish domain event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}
