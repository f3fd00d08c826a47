package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cricbid/auctionctl/internal/auction"
	"github.com/cricbid/auctionctl/internal/config"
	"github.com/cricbid/auctionctl/internal/credentials"
	"github.com/cricbid/auctionctl/internal/log"
	"github.com/cricbid/auctionctl/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "auctionctl",
	Short: "Terminal client for the player auction platform",
	Long: `auctionctl is a terminal client for the player auction platform.
It covers the bidder console (live bidding with team budget tracking), the
admin console (auction lifecycle and player administration), and a read-only
watch mode that follows team budgets as the auction runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupRuntime(cmd)
	},
}

var (
	flagAPIURL   string
	flagLogLevel string

	runtimeConfig config.Config
	credStore     credentials.Store
	apiClient     *auction.Client
	consoleSess   *session.Session
)

// setupRuntime loads configuration, configures logging, and builds the API
// client and session shared by every subcommand.
func setupRuntime(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	runtimeConfig = cfg

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	credStore = credentials.NewFileStore(credentials.DefaultPath(config.Dir()))
	apiClient = auction.NewClient(cfg.APIURL, credStore,
		auction.WithTimeout(cfg.Timeout()),
		auction.WithLogger(logger),
	)
	consoleSess = session.New(apiClient, logger)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "auction platform base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "minimum log level: debug, info, warn, error")
}
