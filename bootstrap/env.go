package bootstrap

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBHost                string `mapstructure:"DB_HOST"`
	DBPort                string `mapstructure:"DB_PORT"`
	DBUser                string `mapstructure:"DB_USER"`
	DBPass                string `mapstructure:"DB_PASS"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	MediaRoot             string `mapstructure:"MEDIA_ROOT"`
	MaxUploadMB           int64  `mapstructure:"MAX_UPLOAD_MB"`
	SearchCandidateWindow int    `mapstructure:"SEARCH_CANDIDATE_WINDOW"`
	SearchResultLimit     int    `mapstructure:"SEARCH_RESULT_LIMIT"`
	PlayGuardSeconds      int    `mapstructure:"PLAY_GUARD_SECONDS"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
}

var envDefaults = map[string]interface{}{
	"APP_ENV":                  "development",
	"SERVER_ADDRESS":           ":8080",
	"CONTEXT_TIMEOUT":          10,
	"DB_HOST":                  "localhost",
	"DB_PORT":                  "27017",
	"DB_USER":                  "",
	"DB_PASS":                  "",
	"DB_NAME":                  "rhythmiq",
	"ACCESS_TOKEN_SECRET":      "",
	"ACCESS_TOKEN_EXPIRY_HOUR": 24,
	"MEDIA_ROOT":               "./media",
	"MAX_UPLOAD_MB":            64,
	"SEARCH_CANDIDATE_WINDOW":  10,
	"SEARCH_RESULT_LIMIT":      10,
	"PLAY_GUARD_SECONDS":       30,
	"LOG_LEVEL":                "info",
}

func NewEnv() *Env {
	env, err := LoadEnv(".env")
	if err != nil {
		log.Fatal("加载配置失败", "error", err)
	}
	if env.AppEnv == "development" {
		log.Info("The App is running in development env")
	}
	return env
}

// LoadEnv 文件不存在时仅使用默认值与环境变量
func LoadEnv(path string) (*Env, error) {
	v := viper.New()
	for key, value := range envDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Warn("配置文件不可用，使用环境变量", "path", path, "error", err)
	}

	env := Env{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	if env.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required")
	}
	return &env, nil
}

func (e *Env) Timeout() time.Duration {
	return time.Duration(e.ContextTimeout) * time.Second
}

func (e *Env) AccessTokenExpiry() time.Duration {
	return time.Duration(e.AccessTokenExpiryHour) * time.Hour
}

func (e *Env) PlayGuardWindow() time.Duration {
	return time.Duration(e.PlayGuardSeconds) * time.Second
}

func (e *Env) MaxUploadBytes() int64 {
	return e.MaxUploadMB << 20
}
