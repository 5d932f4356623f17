package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zhouzirui/z-bookstore/backend/internal/view"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Log     LogConfig
	HTTP    HTTPConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalogConfig()
	if err != nil {
		return nil, err
	}

	httpCfg, err := loadHTTPConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Catalog: catalog,
		Log:     loadLogConfig(),
		HTTP:    httpCfg,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// CatalogConfig 描述图书数据来源、推荐数量与卡片样式。
type CatalogConfig struct {
	// DataPath 为磁盘上的 JSON 文件，留空则使用内嵌数据集
	DataPath string
	// Cache 为 true 时只加载一次，否则每个请求重新读取
	Cache          bool
	RecommendLimit int
	// IndexCard 与 SampleCard 取值为 plain 或 marketplace
	IndexCard  string
	SampleCard string
}

func loadCatalogConfig() (CatalogConfig, error) {
	cache, err := parseBoolEnv("CATALOG_CACHE", false)
	if err != nil {
		return CatalogConfig{}, err
	}

	limit := 3
	if override, err := parseOptionalIntEnv("CATALOG_RECOMMEND_LIMIT"); err != nil {
		return CatalogConfig{}, err
	} else if override != nil {
		if *override < 1 {
			limit = 1
		} else {
			limit = *override
		}
	}

	indexCard := getEnvOrDefault("CATALOG_INDEX_CARD", view.VariantPlain)
	if _, err := view.NewCardRenderer(indexCard); err != nil {
		return CatalogConfig{}, fmt.Errorf("invalid CATALOG_INDEX_CARD: %w", err)
	}
	sampleCard := getEnvOrDefault("CATALOG_SAMPLE_CARD", view.VariantMarketplace)
	if _, err := view.NewCardRenderer(sampleCard); err != nil {
		return CatalogConfig{}, fmt.Errorf("invalid CATALOG_SAMPLE_CARD: %w", err)
	}

	return CatalogConfig{
		DataPath:       strings.TrimSpace(os.Getenv("CATALOG_DATA_PATH")),
		Cache:          cache,
		RecommendLimit: limit,
		IndexCard:      indexCard,
		SampleCard:     sampleCard,
	}, nil
}

// LogConfig 描述日志输出。
type LogConfig struct {
	Level  string
	Format string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level:  getEnvOrDefault("LOG_LEVEL", "info"),
		Format: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

// HTTPConfig 描述跨域与限流配置。
type HTTPConfig struct {
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

func loadHTTPConfig() (HTTPConfig, error) {
	disabled, err := parseBoolEnv("RATE_LIMIT_DISABLED", false)
	if err != nil {
		return HTTPConfig{}, err
	}

	requests := 100
	if override, err := parseOptionalIntEnv("RATE_LIMIT_REQUESTS"); err != nil {
		return HTTPConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return HTTPConfig{}, fmt.Errorf("invalid RATE_LIMIT_REQUESTS value %d: must be positive", *override)
		}
		requests = *override
	}

	window := time.Minute
	if raw := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW")); raw != "" {
		window, err = time.ParseDuration(raw)
		if err != nil {
			return HTTPConfig{}, fmt.Errorf("invalid RATE_LIMIT_WINDOW value %q: %w", raw, err)
		}
		if window <= 0 {
			return HTTPConfig{}, fmt.Errorf("invalid RATE_LIMIT_WINDOW value %q: must be positive", raw)
		}
	}

	return HTTPConfig{
		AllowedOrigins:    splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRequests: requests,
		RateLimitWindow:   window,
		RateLimitDisabled: disabled,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
