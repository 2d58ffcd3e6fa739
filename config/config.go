package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Persistence. STORE_DRIVER is one of file, redis, mongo or memory.
	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	DataDir       string `mapstructure:"DATA_DIR"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`

	// Language model. LLM_PROVIDER is openai or gemini.
	LLMProvider   string        `mapstructure:"LLM_PROVIDER"`
	LLMModel      string        `mapstructure:"LLM_MODEL"`
	LLMTimeout    time.Duration `mapstructure:"LLM_TIMEOUT"`
	OpenAIAPIKey  string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `mapstructure:"OPENAI_BASE_URL"`
	GeminiAPIKey  string        `mapstructure:"GEMINI_API_KEY"`

	// Admin panel.
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`

	CORSOrigins string `mapstructure:"CORS_ORIGINS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_DRIVER", "file")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "digitalmindset")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_STORE_DB", 0)
	v.SetDefault("LLM_PROVIDER", "openai")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TIMEOUT", 120*time.Second)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("CORS_ORIGINS", "*")
}

// AllowedOrigins splits CORS_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
