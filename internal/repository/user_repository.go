package repository

import (
	"context"
	"errors"
	"log/slog"

	"notepad-ai/internal/domain"
	"notepad-ai/pkg/cookie"
)

type UserRepository interface {
	// Get returns nil without error when no user is stored.
	Get(ctx context.Context) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) error
	Clear(ctx context.Context) error
}

type userRepository struct {
	logger *slog.Logger
}

func NewUserRepository(logger *slog.Logger) UserRepository {
	return &userRepository{logger: logger}
}

func (r *userRepository) Get(ctx context.Context) (*domain.User, error) {
	jar, err := jarFrom(ctx)
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := jar.GetJSON(CookieUser, &user); err != nil {
		if !errors.Is(err, cookie.ErrNotFound) {
			r.logger.WarnContext(ctx, "discarding malformed user cookie", "error", err)
		}
		return nil, nil
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *domain.User) error {
	return setJSON(ctx, CookieUser, user)
}

func (r *userRepository) Clear(ctx context.Context) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	jar.Clear(CookieUser)
	return nil
}
