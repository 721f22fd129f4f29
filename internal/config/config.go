package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingAuth   = errors.New("AUTH_USERNAME and AUTH_PASSWORD are required")
	ErrMissingGitHub = errors.New("GITHUB_TOKEN and GITHUB_REPO are required")
	ErrInvalidRepo   = errors.New("GITHUB_REPO must have the form owner/repo")
	ErrInvalidScheme = errors.New("PUBLISH_PATH_SCHEME must be one of dated, yearly, slug")
)

// Config holds application configuration. It is built once by LoadConfig and
// passed by pointer to the components that need it; nothing mutates it afterwards.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	GitHub    GitHubConfig
	Publish   PublishConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	MongoDB   MongoDBConfig
	MinIO     MinIOConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AuthConfig is the single Basic auth credential pair guarding /upload.
type AuthConfig struct {
	Username string
	Password string
}

type GitHubConfig struct {
	Token     string
	Repo      string // owner/repo
	APIURL    string
	Branch    string
	UserAgent string
	Timeout   time.Duration
}

type PublishConfig struct {
	PathScheme    string
	TZOffset      time.Duration
	WriteMarkdown bool
	UnsafeRawHTML bool
	BaseURL       string
	HookTimeout   time.Duration
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")
	viper.SetDefault("GITHUB_USER_AGENT", "quickpost-publisher")
	viper.SetDefault("GITHUB_TIMEOUT", 10)
	viper.SetDefault("PUBLISH_PATH_SCHEME", "dated")
	viper.SetDefault("PUBLISH_TZ_OFFSET_HOURS", 8)
	viper.SetDefault("PUBLISH_MARKDOWN", false)
	viper.SetDefault("PUBLISH_UNSAFE_RAW_HTML", false)
	viper.SetDefault("PUBLISH_HOOK_TIMEOUT", 5)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_RPS", 1.0)
	viper.SetDefault("RATE_LIMIT_BURST", 5)
	viper.SetDefault("RATE_LIMIT_USE_REDIS", false)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("MONGODB_DATABASE", "quickpost")
	viper.SetDefault("MONGODB_TIMEOUT", 10)
	viper.SetDefault("MINIO_BUCKET", "quickpost")

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("SERVER_PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Auth: AuthConfig{
			Username: os.Getenv("AUTH_USERNAME"),
			Password: os.Getenv("AUTH_PASSWORD"),
		},
		GitHub: GitHubConfig{
			Token:     os.Getenv("GITHUB_TOKEN"),
			Repo:      strings.Trim(viper.GetString("GITHUB_REPO"), "/ "),
			APIURL:    strings.TrimRight(viper.GetString("GITHUB_API_URL"), "/"),
			Branch:    viper.GetString("GITHUB_BRANCH"),
			UserAgent: viper.GetString("GITHUB_USER_AGENT"),
			Timeout:   time.Duration(viper.GetInt("GITHUB_TIMEOUT")) * time.Second,
		},
		Publish: PublishConfig{
			PathScheme:    strings.ToLower(strings.TrimSpace(viper.GetString("PUBLISH_PATH_SCHEME"))),
			TZOffset:      time.Duration(viper.GetInt("PUBLISH_TZ_OFFSET_HOURS")) * time.Hour,
			WriteMarkdown: viper.GetBool("PUBLISH_MARKDOWN"),
			UnsafeRawHTML: viper.GetBool("PUBLISH_UNSAFE_RAW_HTML"),
			BaseURL:       strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/"),
			HookTimeout:   time.Duration(viper.GetInt("PUBLISH_HOOK_TIMEOUT")) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		MongoDB: MongoDBConfig{
			URI:      viper.GetString("MONGODB_URI"),
			Database: viper.GetString("MONGODB_DATABASE"),
			Timeout:  time.Duration(viper.GetInt("MONGODB_TIMEOUT")) * time.Second,
		},
		MinIO: MinIOConfig{
			Endpoint:  viper.GetString("MINIO_ENDPOINT"),
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			UseSSL:    viper.GetBool("MINIO_USE_SSL"),
			Bucket:    viper.GetString("MINIO_BUCKET"),
		},
	}

	switch cfg.Publish.PathScheme {
	case "dated", "yearly", "slug":
	default:
		return nil, fmt.Errorf("%w: got %q", ErrInvalidScheme, cfg.Publish.PathScheme)
	}

	return cfg, nil
}

// Validate checks everything the HTTP server needs before it can start.
func (c *Config) Validate() error {
	if c.Auth.Username == "" || c.Auth.Password == "" {
		return ErrMissingAuth
	}
	return c.GitHub.Validate()
}

// Validate checks the Contents API settings; the CLI only needs these.
func (g GitHubConfig) Validate() error {
	if g.Token == "" || g.Repo == "" {
		return ErrMissingGitHub
	}
	owner, repo, ok := strings.Cut(g.Repo, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return fmt.Errorf("%w: got %q", ErrInvalidRepo, g.Repo)
	}
	return nil
}
