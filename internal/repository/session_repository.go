package repository

import (
	"context"
	"fmt"
)

type SessionRepository interface {
	Token(ctx context.Context) (string, error)
	SaveToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type sessionRepository struct{}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{}
}

func (r *sessionRepository) Token(ctx context.Context) (string, error) {
	jar, err := jarFrom(ctx)
	if err != nil {
		return "", err
	}
	token, _ := jar.Get(CookieAuthToken)
	return token, nil
}

func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	if err := jar.Set(CookieAuthToken, token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *sessionRepository) ClearToken(ctx context.Context) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	jar.Clear(CookieAuthToken)
	return nil
}
