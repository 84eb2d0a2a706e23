package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"visitnepal/cmd/fx/config_fx"
	"visitnepal/cmd/fx/controllers_fx"
	"visitnepal/cmd/fx/logger_fx"
	"visitnepal/cmd/fx/memcache_fx"
	"visitnepal/cmd/fx/prompt_fx"
	"visitnepal/cmd/fx/services_fx"
	"visitnepal/internal/api"
	"visitnepal/internal/config"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config.yaml)")
	flag.Parse()

	app := fx.New(
		config_fx.Module(*configFile),
		logger_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		services_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideRouter(cfg *config.Config, logger *zap.Logger, ctrl api.Controllers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	return api.NewRouter(cfg.Server, logger, ctrl)
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr), zap.String("provider", cfg.LLM.Provider))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			if cfg.Server.ShutdownTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
				defer cancel()
			}
			return srv.Shutdown(ctx)
		},
	})
}
