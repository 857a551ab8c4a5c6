package reconcile

import (
	"context"
	"fmt"

	"stock-sync/core/graphql"

	"go.uber.org/zap"
)

const (
	opFetchVariants  = "product variants query"
	opUpdateQuantity = "stock update query"
)

// extraPages allows a search to over-match the batch by a few pages.
const extraPages = 10

// pageLimit bounds how many pages one batch fetch may read.
func pageLimit(skus, pageSize int) int {
	return (skus+pageSize-1)/pageSize + extraPages
}

// fetchVariants reads the current remote state for the batch SKUs.
// Pages are followed while the API reports more results and the cursor advances.
func (e *Engine) fetchVariants(ctx context.Context, log *zap.Logger, batch Batch, pageSize int) ([]RemoteVariant, error) {
	if pageSize > graphql.MaxPageSize {
		pageSize = graphql.MaxPageSize
	}

	var (
		variants []RemoteVariant
		after    string
	)

	limit := pageLimit(len(batch.SKUs), pageSize)
	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, NewFetchError(opFetchVariants, nil, err)
		}
		if page >= limit {
			return nil, NewFetchError(opFetchVariants, nil, fmt.Errorf("pagination did not finish within %d pages", limit))
		}

		query := graphql.VariantsQuery{First: pageSize, SKUs: batch.SKUs, After: after}
		if err := query.Validate(); err != nil {
			return nil, NewFetchError(opFetchVariants, nil, err)
		}

		body, err := e.client.Execute(ctx, query.Render())
		if err != nil {
			return nil, NewFetchError(opFetchVariants, nil, err)
		}

		resp, err := graphql.Decode(body)
		if err != nil {
			return nil, NewFetchError(opFetchVariants, nil, err)
		}
		if resp.HasErrors() {
			return nil, NewFetchError(opFetchVariants, resp.Errors, nil)
		}

		log.Info("Inventory query cost", append(costFields(resp), zap.Int("page", page))...)

		result, err := resp.VariantsPage()
		if err != nil {
			return nil, NewFetchError(opFetchVariants, nil, err)
		}
		for _, v := range result.Variants {
			variants = append(variants, RemoteVariant{
				SKU:               v.SKU,
				InventoryQuantity: v.InventoryQuantity,
				InventoryItemID:   v.InventoryItemID,
			})
		}

		// A next page without a cursor to resume from cannot be requested.
		if !result.HasNextPage || result.EndCursor() == "" {
			return variants, nil
		}
		if result.EndCursor() == after {
			return nil, NewFetchError(opFetchVariants, nil, fmt.Errorf("pagination cursor %q did not advance", after))
		}
		after = result.EndCursor()
	}
}

// applyChanges submits a rendered adjustment mutation.
func (e *Engine) applyChanges(ctx context.Context, log *zap.Logger, request string) error {
	body, err := e.client.Execute(ctx, request)
	if err != nil {
		return NewUpdateError(opUpdateQuantity, nil, err)
	}

	resp, err := graphql.Decode(body)
	if err != nil {
		return NewUpdateError(opUpdateQuantity, nil, err)
	}
	if resp.HasErrors() {
		return NewUpdateError(opUpdateQuantity, resp.Errors, nil)
	}

	result, err := resp.AdjustmentResult()
	if err != nil {
		return NewUpdateError(opUpdateQuantity, nil, err)
	}
	if result.HasUserErrors() {
		return NewUpdateError(opUpdateQuantity, result.UserErrors, nil)
	}

	log.Info("Update stock query cost", costFields(resp)...)
	return nil
}

// costFields extracts the query cost telemetry for logging.
func costFields(resp *graphql.Response) []zap.Field {
	if resp.Extensions == nil || resp.Extensions.Cost == nil {
		return nil
	}
	cost := resp.Extensions.Cost
	fields := []zap.Field{
		zap.Float64("requested_cost", cost.RequestedQueryCost),
		zap.Float64("actual_cost", cost.ActualQueryCost),
	}
	if t := cost.ThrottleStatus; t != nil {
		fields = append(fields,
			zap.Float64("currently_available", t.CurrentlyAvailable),
			zap.Float64("maximum_available", t.MaximumAvailable),
			zap.Float64("restore_rate", t.RestoreRate),
		)
	}
	return fields
}
