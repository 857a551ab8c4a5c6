package reconcile

// PlanBatches partitions the desired SKUs into consecutive batches of at most size SKUs.
// Every SKU appears in exactly one batch and source order is preserved.
func PlanBatches(desired *DesiredStock, size int) ([]Batch, error) {
	if size <= 0 {
		return nil, NewConfigError("batch size must be positive, got %d", size)
	}

	skus := desired.SKUs()
	batches := make([]Batch, 0, (len(skus)+size-1)/size)

	for start := 0; start < len(skus); start += size {
		end := start + size
		if end > len(skus) {
			end = len(skus)
		}
		batches = append(batches, Batch{
			Index: len(batches),
			SKUs:  skus[start:end],
		})
	}

	return batches, nil
}
