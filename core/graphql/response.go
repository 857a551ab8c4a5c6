package graphql

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Response is a decoded GraphQL response envelope.
type Response struct {
	// Data holds the operation result. Decoded lazily by the typed accessors.
	Data json.RawMessage `json:"data"`

	// Errors holds the raw "errors" payload when the API reports a logical failure.
	Errors json.RawMessage `json:"errors"`

	// Extensions carries query cost telemetry.
	Extensions *Extensions `json:"extensions"`
}

// Extensions is the "extensions" object of a response.
type Extensions struct {
	Cost *Cost `json:"cost"`
}

// Cost reports the API cost of a request and the remaining bucket.
type Cost struct {
	RequestedQueryCost float64         `json:"requestedQueryCost"`
	ActualQueryCost    float64         `json:"actualQueryCost"`
	ThrottleStatus     *ThrottleStatus `json:"throttleStatus"`
}

// ThrottleStatus is the leaky-bucket state after a request.
type ThrottleStatus struct {
	MaximumAvailable   float64 `json:"maximumAvailable"`
	CurrentlyAvailable float64 `json:"currentlyAvailable"`
	RestoreRate        float64 `json:"restoreRate"`
}

// Decode parses a response body.
func Decode(body string) (*Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// HasErrors reports whether the response carries an "errors" field.
func (r *Response) HasErrors() bool {
	return isPresent(r.Errors)
}

// Variant is one product variant node.
type Variant struct {
	Cursor            string
	SKU               string
	InventoryQuantity int
	InventoryItemID   string
}

// VariantsPage is one page of a productVariants query.
type VariantsPage struct {
	Variants        []Variant
	HasNextPage     bool
	HasPreviousPage bool
}

// EndCursor returns the cursor of the last variant on the page.
func (p *VariantsPage) EndCursor() string {
	if len(p.Variants) == 0 {
		return ""
	}
	return p.Variants[len(p.Variants)-1].Cursor
}

type variantsData struct {
	ProductVariants *struct {
		Edges []struct {
			Cursor string `json:"cursor"`
			Node   struct {
				SKU               string `json:"sku"`
				InventoryQuantity int    `json:"inventoryQuantity"`
				InventoryItem     struct {
					ID string `json:"id"`
				} `json:"inventoryItem"`
			} `json:"node"`
		} `json:"edges"`
		PageInfo struct {
			HasNextPage     bool `json:"hasNextPage"`
			HasPreviousPage bool `json:"hasPreviousPage"`
		} `json:"pageInfo"`
	} `json:"productVariants"`
}

// VariantsPage decodes the data of a productVariants query.
func (r *Response) VariantsPage() (*VariantsPage, error) {
	if !isPresent(r.Data) {
		return nil, errors.New("response has no data")
	}

	var data variantsData
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to decode product variants: %w", err)
	}
	if data.ProductVariants == nil {
		return nil, errors.New("response has no productVariants field")
	}

	page := &VariantsPage{
		Variants:        make([]Variant, 0, len(data.ProductVariants.Edges)),
		HasNextPage:     data.ProductVariants.PageInfo.HasNextPage,
		HasPreviousPage: data.ProductVariants.PageInfo.HasPreviousPage,
	}
	for _, edge := range data.ProductVariants.Edges {
		page.Variants = append(page.Variants, Variant{
			Cursor:            edge.Cursor,
			SKU:               edge.Node.SKU,
			InventoryQuantity: edge.Node.InventoryQuantity,
			InventoryItemID:   edge.Node.InventoryItem.ID,
		})
	}

	return page, nil
}

// AdjustmentResult is the payload of an inventoryAdjustQuantities mutation.
type AdjustmentResult struct {
	// Group is the created adjustment group. Nil when nothing was applied.
	Group *AdjustmentGroup `json:"inventoryAdjustmentGroup"`

	// UserErrors holds the raw userErrors list.
	UserErrors json.RawMessage `json:"userErrors"`
}

// AdjustmentGroup describes an applied adjustment.
type AdjustmentGroup struct {
	CreatedAt string `json:"createdAt"`
	Reason    string `json:"reason"`
	Changes   []struct {
		Name  string `json:"name"`
		Delta int    `json:"delta"`
	} `json:"changes"`
}

// HasUserErrors reports whether the mutation rejected any input.
func (a *AdjustmentResult) HasUserErrors() bool {
	if !isPresent(a.UserErrors) {
		return false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(a.UserErrors, &list); err != nil {
		// Not a list; report it rather than drop it.
		return true
	}
	return len(list) > 0
}

// AdjustmentResult decodes the data of an inventoryAdjustQuantities mutation.
// A response without the mutation field yields an empty result.
func (r *Response) AdjustmentResult() (*AdjustmentResult, error) {
	var data struct {
		InventoryAdjustQuantities *AdjustmentResult `json:"inventoryAdjustQuantities"`
	}
	if isPresent(r.Data) {
		if err := json.Unmarshal(r.Data, &data); err != nil {
			return nil, fmt.Errorf("failed to decode inventory adjustment: %w", err)
		}
	}
	if data.InventoryAdjustQuantities == nil {
		return &AdjustmentResult{}, nil
	}
	return data.InventoryAdjustQuantities, nil
}

// isPresent reports whether raw holds a non-null JSON value.
func isPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}
