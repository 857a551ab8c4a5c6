package stock

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stock-sync/core/reconcile"
	"stock-sync/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func writeStockFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseStock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		skus    []string
		qty     map[string]int
		wantErr string
	}{
		{
			name:  "Basic",
			input: "SKU1,50\nSKU2,150\n",
			skus:  []string{"SKU1", "SKU2"},
			qty:   map[string]int{"SKU1": 50, "SKU2": 150},
		},
		{
			name:  "TrimsQuantityOnly",
			input: "SKU1, 7 \nSKU2,\t0\n",
			skus:  []string{"SKU1", "SKU2"},
			qty:   map[string]int{"SKU1": 7, "SKU2": 0},
		},
		{
			name:  "KeepsPaddedSKUDistinct",
			input: "A,1\n A,2\n",
			skus:  []string{"A", " A"},
			qty:   map[string]int{"A": 1, " A": 2},
		},
		{
			name:  "DuplicateKeepsFirstPositionLastValue",
			input: "A,1\nB,2\nA,9\n",
			skus:  []string{"A", "B"},
			qty:   map[string]int{"A": 9, "B": 2},
		},
		{
			name:  "NegativeQuantity",
			input: "A,-3\n",
			skus:  []string{"A"},
			qty:   map[string]int{"A": -3},
		},
		{
			name:  "SkipsBlankLines",
			input: "A,1\n\nB,2\n",
			skus:  []string{"A", "B"},
			qty:   map[string]int{"A": 1, "B": 2},
		},
		{
			name:  "Empty",
			input: "",
			skus:  []string{},
			qty:   map[string]int{},
		},
		{
			name:    "TooFewColumns",
			input:   "A,1\nB\n",
			wantErr: "wrong number of fields",
		},
		{
			name:    "TooManyColumns",
			input:   "A,1,extra\n",
			wantErr: "wrong number of fields",
		},
		{
			name:    "BadQuantity",
			input:   "A,1\nB,lots\n",
			wantErr: `line 2: invalid quantity "lots" for sku B`,
		},
		{
			name:    "EmptySKU",
			input:   " ,4\n",
			wantErr: "line 1: sku is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired, err := ParseStock(strings.NewReader(tt.input))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.skus, desired.SKUs())
			for sku, want := range tt.qty {
				got, ok := desired.Get(sku)
				assert.True(t, ok, sku)
				assert.Equal(t, want, got, sku)
			}
		})
	}
}

func TestSource_ReadDesiredStock_LocalFile(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	path := writeStockFile(t, "SKU1,50\nSKU2,150\n")

	desired, err := NewSource(nil, zap.New(core)).ReadDesiredStock(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, 2, desired.Len())
	entries := logs.FilterMessage("Parsed sku from source").All()
	require.Len(t, entries, 1)
	assert.Equal(t, path, entries[0].ContextMap()["source"])
	assert.EqualValues(t, 2, entries[0].ContextMap()["skus"])
}

func TestSource_ReadDesiredStock_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("MissingFile", func(t *testing.T) {
		location := filepath.Join(t.TempDir(), "missing.csv")

		_, err := NewSource(nil, nil).ReadDesiredStock(ctx, location)

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Malformed", func(t *testing.T) {
		path := writeStockFile(t, "A,1\nB,2,3\n")

		_, err := NewSource(nil, nil).ReadDesiredStock(ctx, path)

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
		assert.Contains(t, err.Error(), "SOURCE_READ_ERROR")
		assert.Contains(t, err.Error(), path)
	})

	t.Run("S3WithoutStorage", func(t *testing.T) {
		_, err := NewSource(nil, nil).ReadDesiredStock(ctx, "s3://exports/stock.csv")

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
		assert.Contains(t, err.Error(), "object storage is not configured")
	})

	t.Run("BadS3Location", func(t *testing.T) {
		_, err := NewSource(new(mocks.Client), nil).ReadDesiredStock(ctx, "s3://exports/")

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
	})
}

type closeTracker struct {
	io.Reader
	closed   bool
	closeErr error
}

func (c *closeTracker) Close() error {
	c.closed = true
	return c.closeErr
}

func TestSource_ReadDesiredStock_S3(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		body := &closeTracker{Reader: strings.NewReader("SKU1,5\n")}
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		client.On("GetObject", mock.Anything, "exports", "daily/stock.csv", mock.Anything).Return(body, nil)

		desired, err := NewSource(client, nil).ReadDesiredStock(ctx, "s3://exports/daily/stock.csv")

		require.NoError(t, err)
		qty, ok := desired.Get("SKU1")
		assert.True(t, ok)
		assert.Equal(t, 5, qty)
		assert.True(t, body.closed)
		client.AssertExpectations(t)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(false, nil)

		_, err := NewSource(client, nil).ReadDesiredStock(ctx, "s3://exports/stock.csv")

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
		assert.Contains(t, err.Error(), "bucket exports does not exist")
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("GetObjectFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		client.On("GetObject", mock.Anything, "exports", "stock.csv", mock.Anything).Return(nil, errors.New("access denied"))

		_, err := NewSource(client, nil).ReadDesiredStock(ctx, "s3://exports/stock.csv")

		require.Error(t, err)
		assert.True(t, reconcile.IsKind(err, reconcile.KindSourceRead))
		assert.Contains(t, err.Error(), "access denied")
	})

	t.Run("CloseFails", func(t *testing.T) {
		client := new(mocks.Client)
		body := &closeTracker{Reader: strings.NewReader("SKU1,5\n"), closeErr: errors.New("connection reset")}
		client.On("BucketExists", mock.Anything, "exports").Return(true, nil)
		client.On("GetObject", mock.Anything, "exports", "stock.csv", mock.Anything).Return(body, nil)

		_, err := NewSource(client, nil).ReadDesiredStock(ctx, "s3://exports/stock.csv")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}
