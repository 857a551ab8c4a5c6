// Package graphql builds and decodes the Admin API requests used by the stock sync.
//
// Requests are plain parameter structs with a Validate method and a Render method that
// serializes them to GraphQL text. Rendering is pure: identical inputs always produce
// identical documents, so tests can compare requests as strings.
//
// # Requests
//
//   - VariantsQuery: productVariants filtered by "sku:A OR sku:B ...", with cursor paging.
//   - AdjustQuantities: one inventoryAdjustQuantities mutation carrying every change of a batch.
//
// # Quoting
//
// SKU, inventory item and location values are embedded without escaping. Callers must
// not pass values containing double quotes or backslashes.
//
// # Responses
//
// Decode parses the response envelope. HasErrors reports a logical failure ("errors"
// present) even though the HTTP call itself succeeded. VariantsPage and AdjustmentResult
// decode the operation payloads; Extensions exposes the query cost telemetry.
package graphql
