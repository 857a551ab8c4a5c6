package stock

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"stock-sync/core/reconcile"
	"stock-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Source reads desired stock from a local file or object storage.
type Source struct {
	storage storage.Client
	logger  *zap.Logger
}

// NewSource creates a source. client may be nil when only local paths are read.
func NewSource(client storage.Client, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		storage: client,
		logger:  logger,
	}
}

// WithLogger returns a copy of the source logging to l.
func (s *Source) WithLogger(l *zap.Logger) *Source {
	clone := *s
	clone.logger = l
	return &clone
}

// ReadDesiredStock loads the SKU to quantity mapping found at location.
// Any failure is returned as a source read error.
func (s *Source) ReadDesiredStock(ctx context.Context, location string) (*reconcile.DesiredStock, error) {
	rc, err := s.open(ctx, location)
	if err != nil {
		return nil, reconcile.NewSourceReadError(location, err)
	}

	desired, err := ParseStock(rc)
	err = multierr.Append(err, rc.Close())
	if err != nil {
		return nil, reconcile.NewSourceReadError(location, err)
	}

	s.logger.Info("Parsed sku from source",
		zap.Int("skus", desired.Len()),
		zap.String("source", location),
	)
	return desired, nil
}

func (s *Source) open(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, object, ok, err := storage.ParseLocation(location)
	if err != nil {
		return nil, err
	}
	if !ok {
		return os.Open(location)
	}

	if s.storage == nil {
		return nil, errors.New("object storage is not configured")
	}
	exists, err := s.storage.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}
	return s.storage.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
}

// ParseStock reads headerless "sku,quantity" records.
// SKUs are kept byte for byte; only the quantity is trimmed before parsing.
// A repeated SKU keeps its first position and takes the last quantity.
func ParseStock(r io.Reader) (*reconcile.DesiredStock, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	desired := reconcile.NewDesiredStock()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		sku := record[0]
		if strings.TrimSpace(sku) == "" {
			return nil, fmt.Errorf("line %d: sku is empty", line)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity %q for sku %s: %w", line, record[1], sku, err)
		}
		desired.Set(sku, qty)
	}
	return desired, nil
}
