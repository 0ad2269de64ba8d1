package service

import (
	"context"
	"strings"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/repository"
)

type SettingsService struct {
	settingsRepo repository.SettingsRepository
	userRepo     repository.UserRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository, userRepo repository.UserRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
	}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.SettingsResponse, error) {
	user, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	theme, err := s.Theme(ctx)
	if err != nil {
		return nil, err
	}
	key, err := s.settingsRepo.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SettingsResponse{
		User:   user,
		Theme:  *theme,
		APIKey: apiKeyStatus(key),
	}, nil
}

func (s *SettingsService) Theme(ctx context.Context) (*domain.ThemeResponse, error) {
	theme, err := s.settingsRepo.Theme(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ThemeResponse{Theme: theme, IsDark: theme.IsDark()}, nil
}

func (s *SettingsService) ToggleTheme(ctx context.Context) (*domain.ThemeResponse, error) {
	current, err := s.settingsRepo.Theme(ctx)
	if err != nil {
		return nil, err
	}

	next := current.Toggle()
	if err := s.settingsRepo.SaveTheme(ctx, next); err != nil {
		return nil, err
	}
	return &domain.ThemeResponse{Theme: next, IsDark: next.IsDark()}, nil
}

func (s *SettingsService) SetAPIKey(ctx context.Context, key string) (*domain.APIKeyStatus, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyAPIKey
	}
	if err := s.settingsRepo.SaveAPIKey(ctx, key); err != nil {
		return nil, err
	}
	status := apiKeyStatus(key)
	return &status, nil
}

func (s *SettingsService) ClearAPIKey(ctx context.Context) error {
	return s.settingsRepo.ClearAPIKey(ctx)
}

// apiKeyStatus never exposes more than the last four characters of the key.
func apiKeyStatus(key string) domain.APIKeyStatus {
	if key == "" {
		return domain.APIKeyStatus{}
	}
	if len(key) <= 8 {
		return domain.APIKeyStatus{Configured: true, Masked: strings.Repeat("*", len(key))}
	}
	return domain.APIKeyStatus{Configured: true, Masked: "****" + key[len(key)-4:]}
}
