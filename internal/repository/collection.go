package repository

import (
	"fmt"
	"sync"
)

// Record is implemented by every entity the store can hold.  Clone must
// return a copy that shares no mutable memory with the receiver.
type Record[T any] interface {
	GetID() string
	Clone() T
}

// Collection is a lock-protected set of records keyed by id.  Listing
// returns records in insertion order.  No indexes are kept; predicate
// lookups scan linearly, which is fine at dashboard scale.
type Collection[T Record[T]] struct {
	name  string
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewCollection returns an empty collection.  name shows up in errors.
func NewCollection[T Record[T]](name string) *Collection[T] {
	return &Collection[T]{name: name, items: make(map[string]T)}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Get returns a copy of the record with the given id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	return v.Clone(), nil
}

// Exists reports whether id is present.
func (c *Collection[T]) Exists(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.items[id]
	return ok
}

// List returns copies of all records.
func (c *Collection[T]) List() []T {
	return c.Find(nil)
}

// Find returns copies of the records accepted by pred.  A nil pred
// accepts everything.
func (c *Collection[T]) Find(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if pred == nil || pred(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Insert stores a copy of v and returns another copy.
func (c *Collection[T]) Insert(v T) (T, error) {
	var zero T
	id := v.GetID()
	if id == "" {
		return zero, fmt.Errorf("%s: %w", c.name, ErrEmptyID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrDuplicateID)
	}
	c.items[id] = v.Clone()
	c.order = append(c.order, id)
	return v.Clone(), nil
}

// Update applies mutate to a working copy of the record under the write
// lock.  The copy replaces the original only when mutate returns nil, so a
// rejected mutation leaves the store untouched.  The id cannot be changed.
func (c *Collection[T]) Update(id string, mutate func(*T) error) (T, error) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()
	cur, ok := c.items[id]
	if !ok {
		return zero, fmt.Errorf("%s %q: %w", c.name, id, ErrNotFound)
	}
	work := cur.Clone()
	if err := mutate(&work); err != nil {
		return zero, err
	}
	if work.GetID() != id {
		return zero, fmt.Errorf("%s %q: id is immutable", c.name, id)
	}
	c.items[id] = work.Clone()
	return work.Clone(), nil
}

// Delete removes the record and reports whether it existed.
func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every record.
func (c *Collection[T]) Clear() { c.replace(nil) }

// replace swaps the whole content for copies of items.
func (c *Collection[T]) replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]T, len(items))
	c.order = make([]string, 0, len(items))
	for _, v := range items {
		c.items[v.GetID()] = v.Clone()
		c.order = append(c.order, v.GetID())
	}
}
