package graphql

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultAdjustReason is the adjustment reason sent with stock syncs.
	DefaultAdjustReason = "other"
	// DefaultQuantityName is the inventory state being adjusted.
	DefaultQuantityName = "available"
)

// Change is one inventory adjustment.
type Change struct {
	InventoryItemID string
	Delta           int
	LocationID      string
}

// AdjustQuantities is a bulk inventoryAdjustQuantities mutation.
type AdjustQuantities struct {
	Reason  string
	Name    string
	Changes []Change
}

// NewAdjustQuantities builds a mutation adjusting the "available" quantity with reason "other".
func NewAdjustQuantities(changes []Change) AdjustQuantities {
	return AdjustQuantities{
		Reason:  DefaultAdjustReason,
		Name:    DefaultQuantityName,
		Changes: changes,
	}
}

// Validate checks the mutation parameters.
func (m AdjustQuantities) Validate() error {
	if m.Reason == "" {
		return errors.New("reason is required")
	}
	if m.Name == "" {
		return errors.New("quantity name is required")
	}
	if len(m.Changes) == 0 {
		return errors.New("at least one change is required")
	}
	for i, c := range m.Changes {
		if c.InventoryItemID == "" {
			return fmt.Errorf("change %d: inventory item id is required", i)
		}
		if c.LocationID == "" {
			return fmt.Errorf("change %d: location id is required", i)
		}
		if c.Delta == 0 {
			return fmt.Errorf("change %d: delta must not be zero", i)
		}
	}
	return nil
}

// Render returns the mutation document. Call Validate first.
func (m AdjustQuantities) Render() string {
	var b strings.Builder

	b.WriteString("mutation {\n")
	b.WriteString("  inventoryAdjustQuantities(input: {\n")
	fmt.Fprintf(&b, "    reason: \"%s\",\n", m.Reason)
	fmt.Fprintf(&b, "    name: \"%s\",\n", m.Name)
	b.WriteString("    changes: [\n")
	for _, c := range m.Changes {
		fmt.Fprintf(&b, "      {inventoryItemId: \"%s\", delta: %d, locationId: \"%s\"},\n",
			c.InventoryItemID, c.Delta, c.LocationID)
	}
	b.WriteString("    ]\n")
	b.WriteString("  }) {\n")
	b.WriteString("    inventoryAdjustmentGroup {\n")
	b.WriteString("      createdAt\n")
	b.WriteString("      reason\n")
	b.WriteString("      changes {\n")
	b.WriteString("        name\n")
	b.WriteString("        delta\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
	b.WriteString("    userErrors {\n")
	b.WriteString("      field\n")
	b.WriteString("      message\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}")

	return b.String()
}
