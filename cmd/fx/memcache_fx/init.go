package memcache_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"visitnepal/internal/config"
	mem "visitnepal/pkg/memcache"
)

var Module = fx.Provide(provideFlowCache)

func provideFlowCache(cfg *config.Config, logger *zap.Logger) mem.FlowCacheStore {
	if !cfg.Cache.Enabled {
		return mem.Disabled{}
	}
	logger.Info("Flow cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	return mem.NewFlowCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
}
