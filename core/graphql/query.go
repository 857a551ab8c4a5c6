package graphql

import (
	"errors"
	"fmt"
	"strings"
)

// MaxPageSize is the largest page the Admin API accepts for a connection.
const MaxPageSize = 250

// VariantsQuery selects product variants whose SKU matches any of SKUs.
type VariantsQuery struct {
	// First is the page size.
	First int

	// SKUs are matched exactly, OR-ed together.
	SKUs []string

	// After is the cursor to continue from. Empty requests the first page.
	After string
}

// Validate checks the query parameters.
func (q VariantsQuery) Validate() error {
	if q.First <= 0 {
		return fmt.Errorf("page size must be positive, got %d", q.First)
	}
	if q.First > MaxPageSize {
		return fmt.Errorf("page size must be at most %d, got %d", MaxPageSize, q.First)
	}
	if len(q.SKUs) == 0 {
		return errors.New("at least one sku is required")
	}
	for i, sku := range q.SKUs {
		if sku == "" {
			return fmt.Errorf("sku at position %d is empty", i)
		}
	}
	return nil
}

// SearchFilter returns the search expression, e.g. "sku:A OR sku:B".
// Values are embedded verbatim.
func (q VariantsQuery) SearchFilter() string {
	terms := make([]string, len(q.SKUs))
	for i, sku := range q.SKUs {
		terms[i] = "sku:" + sku
	}
	return strings.Join(terms, " OR ")
}

// Render returns the query document. Call Validate first.
func (q VariantsQuery) Render() string {
	var b strings.Builder

	b.WriteString("query {\n")
	fmt.Fprintf(&b, "  productVariants(first: %d, ", q.First)
	if q.After != "" {
		fmt.Fprintf(&b, "after: %q, ", q.After)
	}
	fmt.Fprintf(&b, "query: \"%s\") {\n", q.SearchFilter())
	b.WriteString("    edges {\n")
	b.WriteString("      cursor\n")
	b.WriteString("      node {\n")
	b.WriteString("        sku\n")
	b.WriteString("        inventoryQuantity\n")
	b.WriteString("        inventoryItem {\n")
	b.WriteString("          id\n")
	b.WriteString("        }\n")
	b.WriteString("      }\n")
	b.WriteString("    }\n")
	b.WriteString("    pageInfo {\n")
	b.WriteString("      hasNextPage\n")
	b.WriteString("      hasPreviousPage\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}")

	return b.String()
}
