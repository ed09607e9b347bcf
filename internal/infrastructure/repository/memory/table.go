package memory

import (
	"fmt"
	"sync"

	"github.com/riskibarqy/ipl-fantasy-tracker/internal/platform/id"
)

// table is an insertion-ordered record set keyed by generated public id.
type table[T any] struct {
	mu     sync.RWMutex
	idGen  id.Generator
	items  map[string]T
	orders []string
}

func newTable[T any](idGen id.Generator) *table[T] {
	return &table[T]{idGen: idGen, items: make(map[string]T)}
}

func (t *table[T]) list(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.orders))
	for _, key := range t.orders {
		item := t.items[key]
		if keep == nil || keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (t *table[T]) create(assign func(id string) T) (T, error) {
	publicID, err := t.idGen.NewID()
	if err != nil {
		var zero T
		return zero, fmt.Errorf("generate record id: %w", err)
	}
	item := assign(publicID)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[publicID] = item
	t.orders = append(t.orders, publicID)
	return item, nil
}

func (t *table[T]) update(publicID string, item T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[publicID]; !ok {
		return false
	}
	t.items[publicID] = item
	return true
}

func (t *table[T]) delete(publicID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.items[publicID]; !ok {
		return false
	}
	delete(t.items, publicID)
	for i, key := range t.orders {
		if key == publicID {
			t.orders = append(t.orders[:i], t.orders[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}
