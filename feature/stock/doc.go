// Package stock implements the stock sync feature.
//
// It reads the desired stock snapshot, a headerless two-column "sku,quantity"
// CSV, from a local file or from object storage ("s3://bucket/key"), and hands
// it to the reconciliation engine together with a remote session.
//
// # Components
//   - Source: parses the stock export into a reconcile.DesiredStock
//   - Config: run settings (location, source, batch size, pacing, dry run)
//   - Service: orchestrates one run and tags its log lines with a run id
package stock
