package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitd/habitd/internal/account"
	"github.com/habitd/habitd/pkg/jwt"
	"github.com/habitd/habitd/pkg/logger"
)

// Storage defines the account persistence operations the service needs.
type Storage interface {
	Create(ctx context.Context, acc account.Account) error
	GetByID(ctx context.Context, id string) (account.Account, error)
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Update(ctx context.Context, id string, patch account.Patch) (account.Account, error)
}

// TokenPair is the response body for login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Service implements registration, password login, and token lifecycle.
type Service struct {
	storage    Storage
	codec      *jwt.Service
	log        *slog.Logger
	bcryptCost int
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
}

// WithTokenTTLs overrides the access and refresh token lifetimes.
func WithTokenTTLs(access, refresh time.Duration) Option {
	return func(s *Service) {
		if access > 0 {
			s.accessTTL = access
		}
		if refresh > 0 {
			s.refreshTTL = refresh
		}
	}
}

// NewService creates an authentication service on top of the given storage
// and token codec.
func NewService(storage Storage, codec *jwt.Service, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		codec:      codec,
		log:        slog.Default(),
		bcryptCost: bcrypt.DefaultCost,
		accessTTL:  30 * time.Minute,
		refreshTTL: 7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a new account with a bcrypt-hashed password.
// Returns account.ErrEmailTaken if the email is already registered.
func (s *Service) Register(ctx context.Context, email, name, password string) (account.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return account.Account{}, fmt.Errorf("hash password: %w", err)
	}

	acc := account.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.storage.Create(ctx, acc); err != nil {
		return account.Account{}, err
	}

	s.log.InfoContext(ctx, "account registered", logger.AccountID(acc.ID))
	return acc, nil
}

// Login verifies the credentials and issues a token pair. Unknown emails
// and wrong passwords both map to ErrInvalidCredentials; only an existing
// but deactivated account returns ErrAccountDisabled.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	acc, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			// Equalize timing between unknown-email and wrong-password paths.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if !acc.IsActive {
		return TokenPair{}, ErrAccountDisabled
	}

	return s.issuePair(acc.ID)
}

// Refresh exchanges a valid refresh token for a new token pair. Access
// tokens are rejected with ErrWrongTokenType.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}
	if claims.TokenType != jwt.TokenRefresh {
		return TokenPair{}, ErrWrongTokenType
	}

	acc, err := s.storage.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return TokenPair{}, ErrUnknownAccount
		}
		return TokenPair{}, err
	}
	if !acc.IsActive {
		return TokenPair{}, ErrAccountDisabled
	}

	return s.issuePair(acc.ID)
}

// Resolve maps an access token to its account. It rejects refresh tokens,
// tokens for missing accounts, and tokens for deactivated accounts.
func (s *Service) Resolve(ctx context.Context, accessToken string) (account.Account, error) {
	claims, err := s.codec.Decode(accessToken)
	if err != nil {
		return account.Account{}, ErrInvalidToken
	}
	if claims.TokenType != jwt.TokenAccess {
		return account.Account{}, ErrWrongTokenType
	}

	acc, err := s.storage.GetByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrUnknownAccount
		}
		return account.Account{}, err
	}
	if !acc.IsActive {
		return account.Account{}, ErrAccountDisabled
	}
	return acc, nil
}

// ResolveOptional classifies a request credential without failing the
// request: an absent token is anonymous, a bad one is invalid, and a good
// one carries the resolved account.
func (s *Service) ResolveOptional(ctx context.Context, accessToken string) Identity {
	if accessToken == "" {
		return Identity{State: IdentityAnonymous}
	}
	acc, err := s.Resolve(ctx, accessToken)
	if err != nil {
		return Identity{State: IdentityInvalid}
	}
	return Identity{State: IdentityAuthenticated, Account: acc}
}

// UpdateProfile applies a partial profile update. Empty patches are
// rejected with ErrNothingToUpdate.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch account.Patch) (account.Account, error) {
	if patch.IsEmpty() {
		return account.Account{}, ErrNothingToUpdate
	}
	acc, err := s.storage.Update(ctx, id, patch)
	if err != nil {
		return account.Account{}, err
	}
	s.log.InfoContext(ctx, "profile updated", logger.AccountID(acc.ID))
	return acc, nil
}

func (s *Service) issuePair(subject string) (TokenPair, error) {
	access, err := s.codec.Issue(subject, jwt.TokenAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.codec.Issue(subject, jwt.TokenRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue refresh token: %w", err)
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// dummyHash is a bcrypt hash of a random string, used to keep login
// timing uniform when the email is unknown.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
