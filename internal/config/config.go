package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full server configuration, read from an optional yaml file
// plus EDUGRADE_* environment variables.
type Config struct {
	Env      string
	Server   ServerConfig
	DB       DBConfig
	Auth     AuthConfig
	Analysis AnalysisConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Addr         string
	StaticDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Path string
}

type AuthConfig struct {
	JWTSecret         string
	AdminUser         string
	AdminPasswordHash string
	TokenTTL          time.Duration
}

type AnalysisConfig struct {
	ImputeThreshold float64
}

type LoggerConfig struct {
	Level string
	Env   string
}

// Load reads configuration from configDir (file optional) and the
// environment. Missing file is fine; a malformed file is not.
func Load(configDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetEnvPrefix("EDUGRADE")
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.static_dir", "")
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("db.path", "edugrade.db")
	v.SetDefault("auth.token_ttl", 12)
	v.SetDefault("analysis.impute_threshold", 0.20)
	v.SetDefault("logger.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	env := v.GetString("env")
	cfg := &Config{
		Env: env,
		Server: ServerConfig{
			Addr:         v.GetString("server.addr"),
			StaticDir:    v.GetString("server.static_dir"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
		Auth: AuthConfig{
			JWTSecret:         v.GetString("auth.jwt_secret"),
			AdminUser:         v.GetString("auth.admin_user"),
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
			TokenTTL:          time.Duration(v.GetInt("auth.token_ttl")) * time.Hour,
		},
		Analysis: AnalysisConfig{
			ImputeThreshold: v.GetFloat64("analysis.impute_threshold"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   env,
		},
	}
	return cfg, nil
}
