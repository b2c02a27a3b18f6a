package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
	"github.com/tvules/cat-charity-fund/internal/domain/repositories"
	"github.com/tvules/cat-charity-fund/internal/infrastructure/auth"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*entities.User, error)
	Login(ctx context.Context, req LoginRequest) (string, *entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	EnsureFirstSuperuser(ctx context.Context, email, password string) error
}

type userUseCase struct {
	sessions managers.SessionFactory
	users    repositories.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

func NewUserUseCase(
	sessions managers.SessionFactory,
	users repositories.UserRepository,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) UserUseCase {
	return &userUseCase{sessions, users, tokens, logger}
}

func (uc *userUseCase) Register(ctx context.Context, req RegisterRequest) (*entities.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess := uc.sessions.NewSession()
	existing, err := uc.users.GetByEmail(ctx, sess, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := uc.users.Create(ctx, sess, map[string]any{
		"id":              uuid.NewString(),
		"email":           req.Email,
		"hashed_password": hash,
		"is_active":       true,
		"is_superuser":    false,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks the credentials and returns a bearer token for the user.
func (uc *userUseCase) Login(ctx context.Context, req LoginRequest) (string, *entities.User, error) {
	sess := uc.sessions.NewSession()
	user, err := uc.users.GetByEmail(ctx, sess, req.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !user.IsActive || !auth.CheckPassword(user.HashedPassword, req.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (uc *userUseCase) GetByID(ctx context.Context, id string) (*entities.User, error) {
	user, err := uc.users.GetByID(ctx, uc.sessions.NewSession(), id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// EnsureFirstSuperuser creates the bootstrap superuser account once, on
// startup, when the credentials are configured.
func (uc *userUseCase) EnsureFirstSuperuser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	sess := uc.sessions.NewSession()
	existing, err := uc.users.GetByEmail(ctx, sess, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = uc.users.Create(ctx, sess, map[string]any{
		"id":              uuid.NewString(),
		"email":           email,
		"hashed_password": hash,
		"is_active":       true,
		"is_superuser":    true,
	})
	if err != nil {
		return err
	}

	uc.logger.Info().Str("email", email).Msg("first superuser created")
	return nil
}
