package services

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/character-forge/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-forge/internal/config"
	"github.com/KirkDiggler/character-forge/internal/repositories/characters"
	"github.com/KirkDiggler/character-forge/internal/repositories/quizsessions"
)

// Closer releases the stores a provider was built on
type Closer func()

// NewProviderFromConfig picks the stores cfg asks for and builds the
// provider. Redis and SQLite fall back to memory when not configured;
// an unreachable Redis also falls back.
func NewProviderFromConfig(ctx context.Context, cfg *config.Config) (*Provider, Closer, error) {
	providerConfig := &ProviderConfig{}
	var closers []func()

	if cfg.DND5E.Enabled {
		dndClient, err := dnd5e.New(&dnd5e.Config{
			HttpClient: &http.Client{
				Timeout: cfg.DND5E.Timeout,
			},
		})
		if err != nil {
			return nil, nil, err
		}
		providerConfig.DNDClient = dndClient
		logrus.Info("SRD enrichment enabled")
	}

	if cfg.Redis.URL != "" {
		if client := connectRedis(ctx, cfg.Redis.URL); client != nil {
			providerConfig.SessionRepository = quizsessions.NewRedisRepository(&quizsessions.RedisRepoConfig{
				Client: client,
				TTL:    cfg.Redis.SessionTTL,
			})
			closers = append(closers, func() {
				if err := client.Close(); err != nil {
					logrus.WithError(err).Warn("error closing Redis connection")
				}
			})
			logrus.Info("using Redis for quiz sessions")
		}
	} else {
		logrus.Info("no REDIS_URL found, keeping quiz sessions in memory")
	}

	if cfg.Archive.Path != "" {
		archive, err := characters.NewSQLiteRepository(&characters.SQLiteRepoConfig{
			Path:   cfg.Archive.Path,
			Silent: true,
		})
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		providerConfig.CharacterRepository = archive
		closers = append(closers, func() {
			if err := archive.Close(); err != nil {
				logrus.WithError(err).Warn("error closing character archive")
			}
		})
		logrus.WithField("path", cfg.Archive.Path).Info("using SQLite character archive")
	} else {
		logrus.Info("no FORGE_ARCHIVE_PATH found, keeping characters in memory")
	}

	return NewProvider(providerConfig), func() { closeAll(closers) }, nil
}

func connectRedis(ctx context.Context, url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		logrus.WithError(err).Warn("failed to parse Redis URL, falling back to memory")
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		logrus.WithError(err).Warn("failed to connect to Redis, falling back to memory")
		_ = client.Close()
		return nil
	}
	return client
}

func closeAll(closers []func()) {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}
