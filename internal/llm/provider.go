package llm

import "context"

// Provider defines the interface for chat completion backends.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}

// Factory builds a Provider bound to the caller's bearer key. The key lives
// in the caller's cookies, so a provider is built per request.
type Factory func(apiKey string) Provider
