package reconcile

import (
	"context"
	"time"
)

// Client executes a request against the remote inventory API.
// Implementations return the raw response body, or an error on transport failure.
// A logical failure reported inside a successful response is not an error at this level.
type Client interface {
	Execute(ctx context.Context, request string) (string, error)
}

// DesiredStock is the authoritative SKU to quantity snapshot for one run.
// Iteration order is the order in which each SKU was first set.
type DesiredStock struct {
	skus []string
	qty  map[string]int
}

// NewDesiredStock creates an empty snapshot.
func NewDesiredStock() *DesiredStock {
	return &DesiredStock{qty: make(map[string]int)}
}

// Set records the desired quantity for sku.
// Setting an existing SKU replaces its quantity and keeps its original position.
func (d *DesiredStock) Set(sku string, quantity int) {
	if _, exists := d.qty[sku]; !exists {
		d.skus = append(d.skus, sku)
	}
	d.qty[sku] = quantity
}

// Get returns the desired quantity for sku.
func (d *DesiredStock) Get(sku string) (int, bool) {
	if d == nil {
		return 0, false
	}
	q, ok := d.qty[sku]
	return q, ok
}

// Len returns the number of distinct SKUs.
func (d *DesiredStock) Len() int {
	if d == nil {
		return 0
	}
	return len(d.skus)
}

// SKUs returns a copy of the SKUs in stable order.
func (d *DesiredStock) SKUs() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.skus))
	copy(out, d.skus)
	return out
}

// Batch is an ordered group of SKUs processed in one fetch+update cycle.
type Batch struct {
	// Index is the zero-based position of the batch in the run.
	Index int

	// SKUs are the batch members in source order.
	SKUs []string
}

// RemoteVariant is the remote state of one product variant.
type RemoteVariant struct {
	SKU               string
	InventoryQuantity int
	InventoryItemID   string
}

// InventoryChange is a signed adjustment for one inventory item at a location.
type InventoryChange struct {
	InventoryItemID string `json:"inventoryItemId"`
	Delta           int    `json:"delta"`
	LocationID      string `json:"locationId"`
}

// Options controls a reconciliation run.
type Options struct {
	// LocationID is the remote location whose inventory is reconciled.
	LocationID string

	// BatchSize is the maximum number of SKUs per fetch/update cycle.
	BatchSize int

	// PacingDelay is the wait between batches. Zero disables pacing.
	PacingDelay time.Duration

	// DryRun renders update requests without executing them.
	DryRun bool
}

// Validate checks the options before any remote call is made.
func (o Options) Validate() error {
	if o.LocationID == "" {
		return NewConfigError("location id is required")
	}
	if o.BatchSize <= 0 {
		return NewConfigError("batch size must be positive, got %d", o.BatchSize)
	}
	if o.PacingDelay < 0 {
		return NewConfigError("pacing delay must not be negative, got %s", o.PacingDelay)
	}
	return nil
}

// runStats counts what a run did. It only feeds the final log line.
type runStats struct {
	batches  int
	skipped  int
	variants int
	changes  int
	notFound int
}
