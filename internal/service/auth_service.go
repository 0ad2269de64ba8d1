package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"notepad-ai/internal/domain"
	"notepad-ai/internal/repository"
	"notepad-ai/pkg/cookie"
	"notepad-ai/pkg/ids"
	"notepad-ai/pkg/jwt"
)

// AuthService simulates sign in. Credentials are accepted as given; the
// session is the user cookie plus a signed authToken.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	sessionTTL  time.Duration
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	user := &domain.User{
		ID:       ids.New(),
		Username: username,
		Email:    username + "@example.com",
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.LoginResponse, error) {
	user := &domain.User{
		ID:       ids.New(),
		Username: strings.TrimSpace(req.Username),
		Email:    strings.TrimSpace(req.Email),
	}
	return s.startSession(ctx, user)
}

func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*domain.LoginResponse, error) {
	expiresAt := cookie.FarFuture
	if s.sessionTTL > 0 {
		expiresAt = time.Now().Add(s.sessionTTL)
	}

	token, err := jwt.GenerateToken(user.ID, expiresAt, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}
	if err := s.sessionRepo.SaveToken(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &domain.LoginResponse{
		User:        user,
		AccessToken: token,
	}, nil
}

// Logout clears the identity cookies. Notes, theme and api key are kept.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.userRepo.Clear(ctx); err != nil {
		return err
	}
	return s.sessionRepo.ClearToken(ctx)
}

func (s *AuthService) Me(ctx context.Context) (*domain.User, error) {
	user, err := s.userRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return user, nil
}

func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	claims, err := jwt.ValidateToken(token, s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthenticated, err)
	}
	return claims, nil
}
