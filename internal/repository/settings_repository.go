package repository

import (
	"context"
	"fmt"

	"notepad-ai/internal/domain"
)

type SettingsRepository interface {
	APIKey(ctx context.Context) (string, error)
	SaveAPIKey(ctx context.Context, key string) error
	ClearAPIKey(ctx context.Context) error
	Theme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

type settingsRepository struct{}

func NewSettingsRepository() SettingsRepository {
	return &settingsRepository{}
}

func (r *settingsRepository) APIKey(ctx context.Context) (string, error) {
	jar, err := jarFrom(ctx)
	if err != nil {
		return "", err
	}
	key, _ := jar.Get(CookieAPIKey)
	return key, nil
}

func (r *settingsRepository) SaveAPIKey(ctx context.Context, key string) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	if err := jar.Set(CookieAPIKey, key); err != nil {
		return fmt.Errorf("failed to save api key: %w", err)
	}
	return nil
}

func (r *settingsRepository) ClearAPIKey(ctx context.Context) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	jar.Clear(CookieAPIKey)
	return nil
}

// Theme defaults to light when the cookie is missing or unrecognised.
func (r *settingsRepository) Theme(ctx context.Context) (domain.Theme, error) {
	jar, err := jarFrom(ctx)
	if err != nil {
		return "", err
	}
	value, _ := jar.Get(CookieTheme)
	if domain.Theme(value) == domain.ThemeDark {
		return domain.ThemeDark, nil
	}
	return domain.ThemeLight, nil
}

func (r *settingsRepository) SaveTheme(ctx context.Context, theme domain.Theme) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	return jar.Set(CookieTheme, string(theme))
}
