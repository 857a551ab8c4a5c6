// Package reconcile synchronizes remote inventory levels with a desired stock snapshot.
//
// The snapshot (DesiredStock) is read once per run. The engine partitions its SKUs into
// fixed-size batches in source order and, for each batch:
//
//  1. fetches the current remote quantity and inventory item id of every SKU,
//  2. computes desired minus remote for each variant and drops zero deltas,
//  3. submits the remaining changes in one bulk adjustment (or only logs it in dry-run mode),
//  4. waits the configured pacing delay before the next batch.
//
// # Failure Semantics
//
// Batches run strictly in sequence because each one reads remote state immediately before
// writing it. The first failure aborts the run with an *Error whose Kind is one of
// KindFetch, KindUpdate or KindConfig; KindSourceRead is produced by stock sources. There
// are no retries here. A rerun starts from the first batch, which is safe because SKUs that
// already match produce no changes.
//
// # Usage
//
//	engine := reconcile.NewEngine(client, reconcile.SleepPacer{}, logger)
//	err := engine.Run(ctx, desired, reconcile.Options{
//	    LocationID:  "gid://shopify/Location/1",
//	    BatchSize:   100,
//	    PacingDelay: time.Second,
//	})
package reconcile
