package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Remote    RemoteConfig
	Mock      MockConfig
	Redis     RedisConfig
	JWT       JWTConfig
	CORS      CORSConfig
	Log       LogConfig
	Assistant AssistantConfig
}

// RemoteConfig holds the two values whose combined presence selects the remote
// backend: a libpq keyword DSN without password, and the access credential.
type RemoteConfig struct {
	URL          string
	Key          string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// Configured reports whether the remote backend should be used. Evaluated once
// at startup by the store factory and never re-checked.
func (r RemoteConfig) Configured() bool {
	return r.URL != "" && r.Key != ""
}

// MockConfig tunes the fallback backend.
type MockConfig struct {
	// DataFile, when set, persists the collection documents across restarts.
	DataFile string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// UnreadCountTTL bounds staleness of the cached unread notification count.
	UnreadCountTTL time.Duration
}

// Enabled reports whether a redis cache should be dialed at all.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// AssistantConfig configures the external text-generation collaborator.
type AssistantConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Remote = RemoteConfig{
		URL:          strings.TrimSpace(v.GetString("REMOTE_DB_URL")),
		Key:          strings.TrimSpace(v.GetString("REMOTE_DB_KEY")),
		SSLMode:      v.GetString("REMOTE_DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("REMOTE_DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("REMOTE_DB_MAX_IDLE_CONNS"),
	}

	cfg.Mock = MockConfig{
		DataFile: v.GetString("MOCK_DATA_FILE"),
	}

	cfg.Redis = RedisConfig{
		Host:           v.GetString("REDIS_HOST"),
		Port:           v.GetInt("REDIS_PORT"),
		Password:       v.GetString("REDIS_PASSWORD"),
		DB:             v.GetInt("REDIS_DB"),
		UnreadCountTTL: parseDuration(v.GetString("REDIS_UNREAD_COUNT_TTL"), 30*time.Second),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Assistant = AssistantConfig{
		APIKey:  v.GetString("ASSISTANT_API_KEY"),
		Model:   v.GetString("ASSISTANT_MODEL"),
		BaseURL: v.GetString("ASSISTANT_BASE_URL"),
		Timeout: parseDuration(v.GetString("ASSISTANT_TIMEOUT"), 30*time.Second),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REMOTE_DB_URL", "")
	v.SetDefault("REMOTE_DB_KEY", "")
	v.SetDefault("REMOTE_DB_SSL_MODE", "disable")
	v.SetDefault("REMOTE_DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("REMOTE_DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("MOCK_DATA_FILE", "")

	v.SetDefault("REDIS_HOST", "")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_UNREAD_COUNT_TTL", "30s")

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "portal-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ASSISTANT_API_KEY", "")
	v.SetDefault("ASSISTANT_MODEL", "gemini-2.5-flash")
	v.SetDefault("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("ASSISTANT_TIMEOUT", "30s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
