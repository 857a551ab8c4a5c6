package reconcile

// ComputeChanges diffs the remote variants of a batch against the desired stock.
//
// Each variant whose SKU belongs to the batch yields a change of desired minus remote
// quantity; zero deltas are dropped. Variants outside the batch are ignored because the
// remote search may match more than the requested SKUs. missing lists the batch SKUs for
// which no variant was returned, in batch order.
func ComputeChanges(desired *DesiredStock, batch Batch, variants []RemoteVariant, locationID string) (changes []InventoryChange, missing []string) {
	inBatch := make(map[string]bool, len(batch.SKUs))
	for _, sku := range batch.SKUs {
		inBatch[sku] = false
	}

	for _, v := range variants {
		if _, ok := inBatch[v.SKU]; !ok {
			continue
		}
		inBatch[v.SKU] = true

		want, ok := desired.Get(v.SKU)
		if !ok {
			continue
		}
		delta := want - v.InventoryQuantity
		if delta == 0 {
			continue
		}
		changes = append(changes, InventoryChange{
			InventoryItemID: v.InventoryItemID,
			Delta:           delta,
			LocationID:      locationID,
		})
	}

	for _, sku := range batch.SKUs {
		if !inBatch[sku] {
			missing = append(missing, sku)
		}
	}

	return changes, missing
}
