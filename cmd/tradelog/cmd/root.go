package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradelog/config"
	"github.com/rustyeddy/tradelog/journal"
	"github.com/rustyeddy/tradelog/logging"
	"github.com/rustyeddy/tradelog/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "tradelog",
	Short: "A trade journal with a multi-asset P&L calculator",
	Long: `Tradelog records discretionary trades in a local SQLite ledger and
computes realized profit and loss for stocks, forex and futures.

It provides tools for:
  - Journaling trades with setup, risk and psychology notes
  - Browsing, exporting and pruning the trade history
  - A profit calculator with per-contract futures multipliers
  - Persisted commission and display settings

Configuration is read from --config (YAML or JSON), a .env file and the
TRADELOG_DB / TRADELOG_LOG_LEVEL environment variables.`,
	SilenceUsage: true,
}

var (
	cfgFile  string
	dbPath   string
	logLevel string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
}

// app is everything a command needs to talk to the ledger.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	ledger  *journal.SQLite
	tracker *tracker.Tracker
}

// openApp loads configuration, opens the ledger and restores the persisted
// settings. Callers must Close the result.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	ledger, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	settings, err := ledger.LoadSettings(ctx, cfg.Settings)
	if err != nil {
		ledger.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}
	log.Debug("ledger opened", zap.String("db", cfg.Journal.DBPath))

	return &app{
		cfg:     cfg,
		log:     log,
		ledger:  ledger,
		tracker: tracker.New(ledger, settings, log),
	}, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile, config.Overrides{DBPath: dbPath, LogLevel: logLevel})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (a *app) Close() {
	if err := a.ledger.Close(); err != nil {
		a.log.Warn("close db", zap.Error(err))
	}
	_ = a.log.Sync()
}

// withApp runs fn against an open app and closes it afterwards.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
