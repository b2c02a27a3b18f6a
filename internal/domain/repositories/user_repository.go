package repositories

import (
	"context"

	"github.com/tvules/cat-charity-fund/internal/domain/entities"
	"github.com/tvules/cat-charity-fund/internal/domain/managers"
)

type UserRepository interface {
	Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.User, error)
	GetByID(ctx context.Context, sess managers.Session, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, sess managers.Session, email string) (*entities.User, error)
	GetAll(ctx context.Context, sess managers.Session) ([]*entities.User, error)
	Update(ctx context.Context, sess managers.Session, user *entities.User, fields map[string]any) (*entities.User, error)
}

type userRepository struct {
	manager *managers.Manager[entities.User]
}

func NewUserRepository() (UserRepository, error) {
	manager, err := managers.New[entities.User](userDefinition{})
	if err != nil {
		return nil, err
	}
	return &userRepository{manager}, nil
}

func (r *userRepository) Create(ctx context.Context, sess managers.Session, fields map[string]any) (*entities.User, error) {
	return r.manager.Create(ctx, sess, fields)
}

func (r *userRepository) GetByID(ctx context.Context, sess managers.Session, id string) (*entities.User, error) {
	return r.manager.Get(ctx, sess, map[string]any{"id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, sess managers.Session, email string) (*entities.User, error) {
	return r.manager.Get(ctx, sess, map[string]any{"email": email})
}

func (r *userRepository) GetAll(ctx context.Context, sess managers.Session) ([]*entities.User, error) {
	return r.manager.GetAll(ctx, sess)
}

func (r *userRepository) Update(ctx context.Context, sess managers.Session, user *entities.User, fields map[string]any) (*entities.User, error) {
	return r.manager.Update(ctx, sess, user, fields)
}

// userDefinition whitelists the user's fields by column name.
type userDefinition struct{}

func (d userDefinition) New(fields map[string]any) (*entities.User, error) {
	user := &entities.User{}
	for field, value := range fields {
		if !d.Has(field) {
			return nil, &managers.UnknownFieldError{Entity: "user", Field: field}
		}
		if !d.Set(user, field, value) {
			return nil, &managers.InvalidValueError{Entity: "user", Field: field}
		}
	}
	return user, nil
}

func (userDefinition) Has(field string) bool {
	switch field {
	case "id", "email", "hashed_password", "is_active", "is_superuser", "created_at":
		return true
	}
	return false
}

func (userDefinition) Get(u *entities.User, field string) (any, bool) {
	switch field {
	case "id":
		return u.ID, true
	case "email":
		return u.Email, true
	case "hashed_password":
		return u.HashedPassword, true
	case "is_active":
		return u.IsActive, true
	case "is_superuser":
		return u.IsSuperuser, true
	case "created_at":
		return u.CreatedAt, true
	}
	return nil, false
}

func (userDefinition) Set(u *entities.User, field string, value any) bool {
	switch field {
	case "id":
		v, ok := asString(value)
		if !ok {
			return false
		}
		u.ID = v
	case "email":
		v, ok := asString(value)
		if !ok {
			return false
		}
		u.Email = v
	case "hashed_password":
		v, ok := asString(value)
		if !ok {
			return false
		}
		u.HashedPassword = v
	case "is_active":
		v, ok := asBool(value)
		if !ok {
			return false
		}
		u.IsActive = v
	case "is_superuser":
		v, ok := asBool(value)
		if !ok {
			return false
		}
		u.IsSuperuser = v
	case "created_at":
		v, ok := asTime(value)
		if !ok {
			return false
		}
		u.CreatedAt = v
	default:
		return false
	}
	return true
}
