package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config 应用配置，全部来自 .env 文件或进程环境变量
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	Tushare    TushareConfig
	OpenRouter OpenRouterConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type LoggingConfig struct {
	Level  string
	Format string // console 或 json
	File   string // 为空时不写文件
}

type TushareConfig struct {
	Token   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Load 加载配置。凭证缺失不会报错：对应网关会降级为兜底行为。
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("未找到 .env 文件，使用系统环境变量")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			File:   getEnv("LOG_FILE", ""),
		},
		Tushare: TushareConfig{
			Token:   getEnv("TUSHARE_API_TOKEN", ""),
			BaseURL: getEnv("TUSHARE_API_URL", ""),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_API_URL", ""),
			Model:   getEnv("OPENROUTER_MODEL", ""),
		},
	}
}

// getEnv 读取环境变量，为空时返回默认值
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
