package graphql_test

import (
	"testing"

	"stock-sync/core/graphql"

	"github.com/stretchr/testify/assert"
)

func TestAdjustQuantities_Render(t *testing.T) {
	m := graphql.NewAdjustQuantities([]graphql.Change{
		{InventoryItemID: "gid://shopify/InventoryItem/1", Delta: 20, LocationID: "gid://shopify/Location/9"},
		{InventoryItemID: "gid://shopify/InventoryItem/2", Delta: -5, LocationID: "gid://shopify/Location/9"},
	})

	want := `mutation {
  inventoryAdjustQuantities(input: {
    reason: "other",
    name: "available",
    changes: [
      {inventoryItemId: "gid://shopify/InventoryItem/1", delta: 20, locationId: "gid://shopify/Location/9"},
      {inventoryItemId: "gid://shopify/InventoryItem/2", delta: -5, locationId: "gid://shopify/Location/9"},
    ]
  }) {
    inventoryAdjustmentGroup {
      createdAt
      reason
      changes {
        name
        delta
      }
    }
    userErrors {
      field
      message
    }
  }
}`
	assert.NoError(t, m.Validate())
	assert.Equal(t, want, m.Render())
}

func TestAdjustQuantities_Validate(t *testing.T) {
	valid := graphql.Change{InventoryItemID: "item", Delta: 1, LocationID: "loc"}

	tests := []struct {
		name     string
		mutation graphql.AdjustQuantities
		wantErr  string
	}{
		{"valid", graphql.NewAdjustQuantities([]graphql.Change{valid}), ""},
		{"no changes", graphql.NewAdjustQuantities(nil), "at least one change"},
		{"zero delta", graphql.NewAdjustQuantities([]graphql.Change{{InventoryItemID: "item", LocationID: "loc"}}), "delta must not be zero"},
		{"missing item", graphql.NewAdjustQuantities([]graphql.Change{valid, {Delta: 1, LocationID: "loc"}}), "change 1: inventory item id"},
		{"missing location", graphql.NewAdjustQuantities([]graphql.Change{{InventoryItemID: "item", Delta: 1}}), "location id is required"},
		{"missing reason", graphql.AdjustQuantities{Name: "available", Changes: []graphql.Change{valid}}, "reason is required"},
		{"missing name", graphql.AdjustQuantities{Reason: "other", Changes: []graphql.Change{valid}}, "quantity name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutation.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
