package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Cookie  CookieConfig
	OpenAI  OpenAIConfig
	CORS    CORSConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Env             string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret string
	// SessionTTL bounds the authToken lifetime. Zero keeps the far-future
	// expiry used for every other cookie.
	SessionTTL time.Duration
}

type CookieConfig struct {
	Secure   bool
	HTTPOnly bool
	SameSite http.SameSite
	MaxSize  int
}

type OpenAIConfig struct {
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	godotenv.Load()

	readTimeout, err := getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	// The assistant call runs inside a request, so the write timeout must
	// outlast the OpenAI timeout.
	writeTimeout, err := getEnvAsDuration("SERVER_WRITE_TIMEOUT", 45*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	sessionTTL, err := getEnvAsDuration("SESSION_TTL", 0)
	if err != nil {
		return nil, err
	}
	openAITimeout, err := getEnvAsDuration("OPENAI_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	temperature, err := getEnvAsFloat("OPENAI_TEMPERATURE", 0.7)
	if err != nil {
		return nil, err
	}
	sameSite, err := parseSameSite(getEnv("COOKIE_SAMESITE", "lax"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Env:             getEnv("ENV", "development"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			SessionTTL: sessionTTL,
		},
		Cookie: CookieConfig{
			Secure:   getEnvAsBool("COOKIE_SECURE", false),
			HTTPOnly: getEnvAsBool("COOKIE_HTTP_ONLY", true),
			SameSite: sameSite,
			MaxSize:  getEnvAsInt("COOKIE_MAX_SIZE", 4096),
		},
		OpenAI: OpenAIConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			Temperature: temperature,
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 500),
			Timeout:     openAITimeout,
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			AllowedMethods: getEnvAsList("CORS_ALLOWED_METHODS", "GET,POST,PUT,PATCH,DELETE,OPTIONS"),
			AllowedHeaders: getEnvAsList("CORS_ALLOWED_HEADERS", "Content-Type,Authorization"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if cfg.Server.Env == "production" && cfg.Auth.JWTSecret == "dev-secret-change-in-production" {
		return nil, fmt.Errorf("JWT_SECRET must be set in production")
	}
	if cfg.Cookie.MaxSize <= 0 {
		return nil, fmt.Errorf("invalid COOKIE_MAX_SIZE: %d", cfg.Cookie.MaxSize)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSameSite(value string) (http.SameSite, error) {
	switch strings.ToLower(value) {
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	}
	return 0, fmt.Errorf("invalid COOKIE_SAMESITE: %q", value)
}
