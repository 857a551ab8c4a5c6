package reconcile

import (
	"context"
	"fmt"

	"stock-sync/core/graphql"

	"go.uber.org/zap"
)

// Engine reconciles remote inventory against a desired stock snapshot.
// An Engine is bound to one client handle and runs batches strictly in sequence.
type Engine struct {
	client Client
	pacer  Pacer
	logger *zap.Logger
}

// NewEngine creates an engine. A nil pacer defaults to SleepPacer and a nil logger to a no-op logger.
func NewEngine(client Client, pacer Pacer, logger *zap.Logger) *Engine {
	if pacer == nil {
		pacer = SleepPacer{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		client: client,
		pacer:  pacer,
		logger: logger,
	}
}

// Run reconciles every SKU of desired, one batch at a time.
//
// Each batch is fetched, diffed and, when anything changed, updated with a single
// mutation. The first fetch or update failure aborts the run; batches already applied
// stay applied. Re-running from the start is safe since converged SKUs diff to zero.
func (e *Engine) Run(ctx context.Context, desired *DesiredStock, opts Options) error {
	if e.client == nil {
		return NewConfigError("remote inventory client is required")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	batches, err := PlanBatches(desired, opts.BatchSize)
	if err != nil {
		return err
	}

	log := e.logger.With(
		zap.String("location_id", opts.LocationID),
		zap.Bool("dry_run", opts.DryRun),
	)
	log.Info("Starting stock reconciliation",
		zap.Int("skus", desired.Len()),
		zap.Int("batches", len(batches)),
		zap.Int("batch_size", opts.BatchSize),
		zap.Duration("pacing_delay", opts.PacingDelay),
	)

	var stats runStats
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stock reconciliation interrupted before batch %d: %w", batch.Index, err)
		}

		if err := e.reconcileBatch(ctx, log, desired, batch, opts, &stats); err != nil {
			log.Error("Stock reconciliation aborted",
				zap.Int("batch", batch.Index),
				zap.Int("batches_done", stats.batches),
				zap.Error(err),
			)
			return err
		}
		stats.batches++

		if i < len(batches)-1 {
			if err := e.pacer.Wait(ctx, opts.PacingDelay); err != nil {
				return fmt.Errorf("stock reconciliation interrupted after batch %d: %w", batch.Index, err)
			}
		}
	}

	log.Info("Stock reconciliation completed",
		zap.Int("batches", stats.batches),
		zap.Int("skipped_batches", stats.skipped),
		zap.Int("variants", stats.variants),
		zap.Int("changes", stats.changes),
		zap.Int("not_found", stats.notFound),
	)
	return nil
}

// reconcileBatch runs one fetch, diff and update cycle.
func (e *Engine) reconcileBatch(ctx context.Context, log *zap.Logger, desired *DesiredStock, batch Batch, opts Options, stats *runStats) error {
	log = log.With(zap.Int("batch", batch.Index))

	variants, err := e.fetchVariants(ctx, log, batch, opts.BatchSize)
	if err != nil {
		return err
	}

	changes, missing := ComputeChanges(desired, batch, variants, opts.LocationID)
	stats.variants += len(variants)
	stats.notFound += len(missing)

	log.Info("Fetched product variants",
		zap.Int("skus", len(batch.SKUs)),
		zap.Int("variants", len(variants)),
		zap.Int("changes", len(changes)),
	)
	if len(missing) > 0 {
		log.Warn("SKUs not found in remote inventory", zap.Strings("skus", missing))
	}

	if len(changes) == 0 {
		log.Info("Update stock query skipped, no stock level changes for product variants in batch")
		stats.skipped++
		return nil
	}

	mutation := graphql.NewAdjustQuantities(toGraphQLChanges(changes))
	if err := mutation.Validate(); err != nil {
		return NewUpdateError(opUpdateQuantity, nil, err)
	}
	request := mutation.Render()

	if opts.DryRun {
		log.Info("Dry run: stock update query not submitted",
			zap.Int("changes", len(changes)),
			zap.String("query", request),
		)
		stats.changes += len(changes)
		return nil
	}

	if err := e.applyChanges(ctx, log, request); err != nil {
		return err
	}
	stats.changes += len(changes)
	return nil
}

func toGraphQLChanges(changes []InventoryChange) []graphql.Change {
	out := make([]graphql.Change, len(changes))
	for i, c := range changes {
		out[i] = graphql.Change{
			InventoryItemID: c.InventoryItemID,
			Delta:           c.Delta,
			LocationID:      c.LocationID,
		}
	}
	return out
}
