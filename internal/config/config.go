// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// 僅供開發使用的預設值，正式環境必須覆寫
const (
	DefaultSecretKey    = "your-secret-key-change-this-in-production"
	DefaultSerpAPIKey   = "serpapi-key-not-set"
	DefaultGeminiAPIKey = "gemini-key-not-set"
	DefaultOpenAIAPIKey = "openai-key-not-set"

	// DefaultBcryptCost 12 輪約在數十毫秒內完成一次驗證
	DefaultBcryptCost = 12
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"
)

// Config 程式啟動時載入一次，之後唯讀
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Search   SearchConfig
	LLM      LLMConfig
	Resume   ResumeConfig
	CORS     CORSConfig
	Worker   WorkerConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	URL string
}

// RedisConfig Addr 為空時停用使用量統計
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	SecretKey      string
	AccessTokenTTL time.Duration
	BcryptCost     int
	RevokeOnLogout bool
}

type SearchConfig struct {
	APIKey          string
	BaseURL         string
	Timeout         time.Duration
	DefaultLocation string
}

type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

type ResumeConfig struct {
	MaxUpload string
	TempDir   string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// WorkerConfig 背景工作 (使用量計數) 的 worker 數
type WorkerConfig struct {
	Count int
}

type LogConfig struct {
	Level  string
	Format string
}

// Load 讀取 .env (可選) 與環境變數
func Load() (*Config, error) {
	// .env 不存在不是錯誤
	_ = godotenv.Load()

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini))
	llmKey := getEnv("GEMINI_API_KEY", DefaultGeminiAPIKey)
	llmModel := DefaultGeminiModel
	if provider == ProviderOpenAI {
		llmKey = getEnv("OPENAI_API_KEY", DefaultOpenAIAPIKey)
		llmModel = DefaultOpenAIModel
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 90*time.Second),
			IdleTimeout:     getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			SecretKey:      getEnv("SECRET_KEY", DefaultSecretKey),
			AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 30*time.Minute),
			BcryptCost:     getIntEnv("BCRYPT_COST", DefaultBcryptCost),
			RevokeOnLogout: getBoolEnv("AUTH_REVOKE_ON_LOGOUT", true),
		},
		Search: SearchConfig{
			APIKey:          getEnv("SERPAPI_KEY", DefaultSerpAPIKey),
			BaseURL:         getEnv("SERPAPI_URL", "https://serpapi.com/search"),
			Timeout:         getDurationEnv("SEARCH_TIMEOUT", 10*time.Second),
			DefaultLocation: getEnv("SEARCH_DEFAULT_LOCATION", "India"),
		},
		LLM: LLMConfig{
			Provider: provider,
			APIKey:   llmKey,
			Model:    getEnv("LLM_MODEL", llmModel),
			BaseURL:  os.Getenv("LLM_BASE_URL"),
			Timeout:  getDurationEnv("LLM_TIMEOUT", 60*time.Second),
		},
		Resume: ResumeConfig{
			MaxUpload: getEnv("RESUME_MAX_UPLOAD", "10M"),
			TempDir:   os.Getenv("RESUME_TMP_DIR"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Worker: WorkerConfig{
			Count: getIntEnv("WORKER_COUNT", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate 檢查必要設定
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	switch c.LLM.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}
	return nil
}

// Warnings 列出仍在使用的不安全預設值 (不含實際值)
func (c *Config) Warnings() []string {
	var w []string
	if c.Auth.SecretKey == DefaultSecretKey {
		w = append(w, "SECRET_KEY is using the insecure default")
	}
	if c.Search.APIKey == DefaultSerpAPIKey {
		w = append(w, "SERPAPI_KEY is not set, job search will return no results")
	}
	if c.LLM.APIKey == DefaultGeminiAPIKey || c.LLM.APIKey == DefaultOpenAIAPIKey {
		w = append(w, "LLM API key is not set, resume feedback will report an error")
	}
	if c.Redis.Addr == "" {
		w = append(w, "REDIS_ADDR is not set, usage statistics are disabled")
	}
	return w
}

// Addr 伺服器監聽位址
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var parts []string
	for _, p := range strings.Split(value, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return defaultValue
	}
	return parts
}
