// Command flowctl runs the Visit Nepal flows from the terminal and prints the
// JSON result.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"visitnepal/internal/config"
	"visitnepal/internal/flow"
	mem "visitnepal/pkg/memcache"
	"visitnepal/pkg/utils"
)

var (
	configFile string
	provider   string
	model      string
	timeout    time.Duration
	verbose    bool

	// newLLMClient is replaced in tests.
	newLLMClient = utils.NewLLMClient
)

var rootCmd = &cobra.Command{
	Use:   "flowctl",
	Short: "Run Visit Nepal prompt flows from the command line",
	Long: `flowctl runs a single flow against the configured model provider and
prints the result as JSON. It reads the same configuration as the server
(etc/config.yaml, .env and environment variables).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file path (default: etc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "LLM provider: gemini, genai or openai")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Model name override")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "Per-call timeout (0 uses the config value)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log to stderr")

	rootCmd.AddCommand(itineraryCmd)
	rootCmd.AddCommand(gemsCmd)
	rootCmd.AddCommand(districtCmd)
	rootCmd.AddCommand(imageCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(postcardCmd)
	rootCmd.AddCommand(districtsCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type runtime struct {
	runner *flow.Runner
	client utils.LLMClient
	logger *zap.Logger
	cache  mem.FlowCacheStore
}

func (r *runtime) Close() {
	_ = r.client.Close()
	_ = r.logger.Sync()
}

// setup loads configuration, applies flag overrides and opens the LLM client.
func setup() (*runtime, error) {
	if provider != "" {
		_ = os.Setenv("LLM_PROVIDER", provider)
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if timeout > 0 {
		cfg.LLM.Timeout = timeout
	}

	logger := zap.NewNop()
	if verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, err
		}
	}

	client, err := newLLMClient(cfg.ProviderConfig())
	if err != nil {
		return nil, err
	}

	return &runtime{
		runner: flow.NewRunner(client, logger, cfg.LLM.Timeout),
		client: client,
		logger: logger,
		cache:  mem.Disabled{},
	}, nil
}
