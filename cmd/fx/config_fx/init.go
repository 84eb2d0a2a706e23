package config_fx

import (
	"go.uber.org/fx"

	"visitnepal/internal/config"
)

// Module loads configuration from configFile, or the default locations when empty.
func Module(configFile string) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		return config.Load(configFile)
	})
}
