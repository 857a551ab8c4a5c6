package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"stock-sync/core/config"
	"stock-sync/core/logger"
	"stock-sync/core/remote"
	"stock-sync/core/storage"
	"stock-sync/feature/stock"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncLocationID  string
	syncSource      string
	syncBatchSize   int
	syncPacingDelay float64
	syncDryRun      bool
)

// syncCmd reconciles remote stock with the configured source.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize remote stock levels from a CSV export",
	Long: `Reads a headerless "sku,quantity" CSV (local path or s3://bucket/key) and
adjusts the remote inventory of one location to match it, batch by batch.

Flags override the configuration loaded from the environment and .env.

Examples:
  # Preview the mutations without submitting them
  stock-sync sync --source stock.csv --location-id gid://shopify/Location/1 --dry-run

  # Sync from object storage in batches of 50, half a second apart
  stock-sync sync --source s3://exports/stock.csv --batch-size 50 --pacing-delay 0.5`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncLocationID, "location-id", "", "Remote location id (overrides sync.location_id)")
	syncCmd.Flags().StringVar(&syncSource, "source", "", "Stock source path or s3://bucket/key (overrides sync.source)")
	syncCmd.Flags().IntVar(&syncBatchSize, "batch-size", 0, "SKUs per fetch/update cycle (overrides sync.batch_size)")
	syncCmd.Flags().Float64Var(&syncPacingDelay, "pacing-delay", 0, "Seconds to wait between batches (overrides sync.pacing_delay_seconds)")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Render update mutations without submitting them")

	RootCmd.AddCommand(syncCmd)
}

// applySyncFlags copies explicitly set flags over the loaded configuration.
func applySyncFlags(cmd *cobra.Command, cfg *stock.Config) {
	flags := cmd.Flags()
	if flags.Changed("location-id") {
		cfg.LocationID = syncLocationID
	}
	if flags.Changed("source") {
		cfg.Source = syncSource
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = syncBatchSize
	}
	if flags.Changed("pacing-delay") {
		cfg.PacingDelaySeconds = syncPacingDelay
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = syncDryRun
	}
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applySyncFlags(cmd, &cfg.Sync)

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	// Object storage is only needed for s3:// sources
	var storageClient storage.Client
	if strings.HasPrefix(cfg.Sync.Source, storage.Scheme) {
		storageClient, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	// Secrets Manager is only needed when the token is not set inline
	var secrets remote.SecretSource
	if cfg.Remote.AccessToken == "" && cfg.Remote.AccessTokenSecretID != "" {
		awsSecrets, err := remote.NewAWSSecrets(ctx)
		if err != nil {
			return err
		}
		secrets = awsSecrets
	}

	provider := remote.NewProvider(secrets, l)
	creds, err := provider.Credentials(ctx, cfg.Remote)
	if err != nil {
		return err
	}

	svc := stock.NewService(stock.NewSource(storageClient, l), provider, nil, l)
	if err := svc.Sync(ctx, cfg.Sync, creds); err != nil {
		l.Error("Stock sync failed", zap.Error(err))
		return err
	}

	l.Info("Stock sync finished")
	return nil
}
