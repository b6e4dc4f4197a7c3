package setup

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jmbenitez/jurischat/internal/config"
	"github.com/jmbenitez/jurischat/internal/engine"
	"github.com/jmbenitez/jurischat/internal/extractor"
	"github.com/jmbenitez/jurischat/internal/store"
)

type Config struct {
	Port          string
	StoreBackend  string
	SnapshotPath  string
	RedisAddr     string
	RedisPassword string
	RedisKey      string
	RedisRetries  int
	LogLevel      string
}

type Dependencies struct {
	Engine *engine.Engine
	Store  store.Store
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("CHAT_API_PORT", "18080"),
		StoreBackend:  getEnv("STORE_BACKEND", "file"),
		SnapshotPath:  getEnv("SNAPSHOT_PATH", "chat_datos.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisKey:      getEnv("REDIS_SNAPSHOT_KEY", "jurischat:snapshot"),
		RedisRetries:  getEnvInt("REDIS_MAX_RETRIES", 5),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	filtrosCfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load filter config: %w", err)
	}

	st, err := createStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ext := extractor.New(filtrosCfg)
	eng := engine.New(ext, st, logger)

	return &Dependencies{
		Engine: eng,
		Store:  st,
		Logger: logger,
	}, nil
}

func createStore(ctx context.Context, cfg *Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := store.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisRetries)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		return store.NewRedisStore(client, cfg.RedisKey), nil
	case "file":
		return store.NewFileStore(cfg.SnapshotPath), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
