package prompt_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"visitnepal/internal/config"
	"visitnepal/internal/flow"
	"visitnepal/pkg/utils"
)

var Module = fx.Provide(
	ProvideLLMClient,
	ProvideFlowRunner)

// ProvideLLMClient creates the model client for the configured provider and
// closes it when the app stops.
func ProvideLLMClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.LLMClient, error) {
	client, err := utils.NewLLMClient(cfg.ProviderConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.LLM.Provider, err)
	}

	logger.Info("LLM client initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("client", client.Name()),
		zap.Duration("timeout", cfg.LLM.Timeout))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvideFlowRunner(client utils.LLMClient, cfg *config.Config, logger *zap.Logger) *flow.Runner {
	return flow.NewRunner(client, logger.Named("flow"), cfg.LLM.Timeout)
}
