package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	searchPattern = regexp.MustCompile(`query: "([^"]*)"`)
	changePattern = regexp.MustCompile(`inventoryItemId: "([^"]+)", delta: (-?\d+), locationId: "([^"]+)"`)
)

// fakeClient records every request and answers with handler.
type fakeClient struct {
	requests []string
	handler  func(call int, request string) (string, error)
}

func (f *fakeClient) Execute(ctx context.Context, request string) (string, error) {
	f.requests = append(f.requests, request)
	return f.handler(len(f.requests)-1, request)
}

func (f *fakeClient) mutations() []string {
	var out []string
	for _, r := range f.requests {
		if isMutation(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeClient) queries() []string {
	var out []string
	for _, r := range f.requests {
		if !isMutation(r) {
			out = append(out, r)
		}
	}
	return out
}

func isMutation(request string) bool {
	return strings.HasPrefix(request, "mutation")
}

// fakeItem is one variant held by fakeShop.
type fakeItem struct {
	sku string
	id  string
	qty int
}

// fakeShop is an in-memory inventory answering the rendered requests.
type fakeShop struct {
	items []*fakeItem
}

func newFakeShop(items ...fakeItem) *fakeShop {
	s := &fakeShop{}
	for i := range items {
		item := items[i]
		s.items = append(s.items, &item)
	}
	return s
}

func (s *fakeShop) quantity(sku string) int {
	for _, item := range s.items {
		if item.sku == sku {
			return item.qty
		}
	}
	return 0
}

func (s *fakeShop) handle(_ int, request string) (string, error) {
	if isMutation(request) {
		for _, m := range changePattern.FindAllStringSubmatch(request, -1) {
			delta, err := strconv.Atoi(m[2])
			if err != nil {
				return "", err
			}
			for _, item := range s.items {
				if item.id == m[1] {
					item.qty += delta
				}
			}
		}
		return adjustResponse(), nil
	}

	match := searchPattern.FindStringSubmatch(request)
	if match == nil {
		return "", errors.New("no search filter in request")
	}
	wanted := map[string]bool{}
	for _, term := range strings.Split(match[1], " OR ") {
		wanted[strings.TrimPrefix(term, "sku:")] = true
	}

	var variants []fakeItem
	for _, item := range s.items {
		if wanted[item.sku] {
			variants = append(variants, *item)
		}
	}
	return variantsResponse(false, variants...), nil
}

func variantsResponse(hasNext bool, items ...fakeItem) string {
	edges := make([]map[string]any, 0, len(items))
	for _, item := range items {
		edges = append(edges, map[string]any{
			"cursor": "cursor-" + item.sku,
			"node": map[string]any{
				"sku":               item.sku,
				"inventoryQuantity": item.qty,
				"inventoryItem":     map[string]any{"id": item.id},
			},
		})
	}
	return mustJSON(map[string]any{
		"data": map[string]any{
			"productVariants": map[string]any{
				"edges":    edges,
				"pageInfo": map[string]any{"hasNextPage": hasNext, "hasPreviousPage": false},
			},
		},
		"extensions": map[string]any{
			"cost": map[string]any{
				"requestedQueryCost": 10,
				"actualQueryCost":    10,
				"throttleStatus": map[string]any{
					"maximumAvailable":   1000,
					"currentlyAvailable": 990,
					"restoreRate":        50,
				},
			},
		},
	})
}

func adjustResponse() string {
	return mustJSON(map[string]any{
		"data": map[string]any{
			"inventoryAdjustQuantities": map[string]any{
				"inventoryAdjustmentGroup": map[string]any{
					"createdAt": "2025-01-01T00:00:00Z",
					"reason":    "other",
					"changes": []map[string]any{
						{"name": "available", "delta": 2},
						{"name": "on_hand", "delta": 2},
					},
				},
				"userErrors": []any{},
			},
		},
		"extensions": map[string]any{
			"cost": map[string]any{"requestedQueryCost": 11, "actualQueryCost": 11},
		},
	})
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// recordingPacer records waits without sleeping.
type recordingPacer struct {
	waits []time.Duration
	err   error
}

func (p *recordingPacer) Wait(ctx context.Context, d time.Duration) error {
	p.waits = append(p.waits, d)
	return p.err
}

func stockOf(pairs ...any) *DesiredStock {
	d := NewDesiredStock()
	for i := 0; i < len(pairs); i += 2 {
		d.Set(pairs[i].(string), pairs[i+1].(int))
	}
	return d
}
