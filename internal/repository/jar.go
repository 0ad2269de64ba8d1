package repository

import (
	"context"
	"errors"
	"fmt"

	"notepad-ai/pkg/cookie"
)

// Cookie names shared with the browser client.
const (
	CookieUser      = "user"
	CookieAuthToken = "authToken"
	CookieAPIKey    = "openaiKey"
	CookieNotes     = "notes"
	CookieTheme     = "theme"
)

var (
	ErrNoJar    = errors.New("no cookie jar bound to context")
	ErrTooLarge = cookie.ErrTooLarge
)

func jarFrom(ctx context.Context) (*cookie.Jar, error) {
	jar, ok := cookie.FromContext(ctx)
	if !ok {
		return nil, ErrNoJar
	}
	return jar, nil
}

func setJSON(ctx context.Context, name string, v any) error {
	jar, err := jarFrom(ctx)
	if err != nil {
		return err
	}
	if err := jar.SetJSON(name, v); err != nil {
		return fmt.Errorf("failed to save %s: %w", name, err)
	}
	return nil
}
