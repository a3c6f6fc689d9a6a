// Package collection builds ordered, de-duplicated collections of typed
// content records and exposes the filtered views pages render from.
package collection

import "github.com/punchlinehub/sitecontent/internal/content"

// Collection is an immutable, ordered sequence of records of one kind.
// Accessors return copies; the zero value is an empty collection.
type Collection[T content.Record] struct {
	kind  content.Kind
	items []T
	index map[string]int
}

// New builds a collection over a copy of items. Ids must already be unique.
func New[T content.Record](kind content.Kind, items []T) Collection[T] {
	c := Collection[T]{
		kind:  kind,
		items: append([]T(nil), items...),
		index: make(map[string]int, len(items)),
	}
	for i, item := range c.items {
		c.index[item.RecordID()] = i
	}
	return c
}

func (c Collection[T]) Kind() content.Kind { return c.kind }

func (c Collection[T]) Len() int { return len(c.items) }

// All returns every record in collection order.
func (c Collection[T]) All() []T {
	return append([]T(nil), c.items...)
}

// Get looks a record up by id.
func (c Collection[T]) Get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.items[i], true
}

// Filter returns the records matching keep, in collection order.
func (c Collection[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// IDs returns record ids in collection order.
func (c Collection[T]) IDs() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.RecordID()
	}
	return ids
}
