package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/avoronovs/partyplan/internal/common"
	"github.com/avoronovs/partyplan/internal/server/auth"
	"github.com/avoronovs/partyplan/internal/server/config"
	"github.com/avoronovs/partyplan/internal/server/models"
	"github.com/avoronovs/partyplan/internal/server/repositories/users"
)

// SignupInput is the payload accepted by Signup.
type SignupInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginInput is the payload accepted by Login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserService provides the credential lifecycle:
//   - Signup: create users with a bcrypt password digest
//   - Login: verify credentials and mint a bearer token
type UserService struct {
	repo      users.Repository
	secretKey []byte
	tokenTTL  time.Duration
	validate  *validator.Validate
}

// NewUserService constructs a UserService using the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		validate:  newValidator(),
	}
}

// Signup validates the input, rejects duplicate emails, hashes the password,
// and persists the new user. The returned User carries the server-assigned
// id and creation timestamp; the digest never leaves the models layer.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error; a signup racing on the same email
	// still loses at the unique index and maps to the same error.
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, common.ErrEmailExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("email lookup error: %w", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		PasswordDigest: string(digest),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login verifies the email/password pair and, on success, returns the user
// together with a freshly minted bearer token. An unknown email and a wrong
// password produce the identical common.ErrInvalidCredentials so callers
// cannot learn which factor failed.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if err := checkStruct(s.validate, in); err != nil {
		return nil, "", err
	}

	user, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(in.Password)) != nil {
		return nil, "", common.ErrInvalidCredentials
	}

	token, err := auth.Mint(auth.Identity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, s.secretKey, s.tokenTTL)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// TokenTTL exposes the configured token lifetime, used by the HTTP layer to
// align the cookie max-age with token expiry.
func (s *UserService) TokenTTL() time.Duration { return s.tokenTTL }
