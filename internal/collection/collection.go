// Package collection holds a remote list in memory: it loads the list,
// records read errors as state and patches the list locally after each
// successful mutation.
package collection

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
	"github.com/adrianAraqueG/gaston/internal/log"
)

// Entity is anything addressable by its backend id.
type Entity interface {
	EntityID() int64
}

type Loader[T any] func(ctx context.Context) ([]T, error)

// State is a point-in-time copy of a collection.
type State[T any] struct {
	Items   []T
	Loading bool
	Err     string
}

type Collection[T Entity] struct {
	mu      sync.Mutex
	items   []T
	loading bool
	err     string
	gen     uint64

	load     Loader[T]
	fallback string
	order    func(a, b T) int
	logger   *log.Logger
}

type Option[T Entity] func(*Collection[T])

// SortOnInsert keeps the list ordered by cmp after every Insert.
func SortOnInsert[T Entity](cmp func(a, b T) int) Option[T] {
	return func(c *Collection[T]) { c.order = cmp }
}

func WithLogger[T Entity](logger *log.Logger) Option[T] {
	return func(c *Collection[T]) { c.logger = logger.WithComponent(log.ComponentCollection) }
}

// New returns a collection in the loading state. fallback is the message
// recorded when a read error carries none.
func New[T Entity](load Loader[T], fallback string, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		load:     load,
		fallback: fallback,
		loading:  true,
		logger:   log.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh reloads the list. A read error is recorded in the state and also
// returned; callers that only render state may ignore it. When a newer
// Refresh started in the meantime, this result is dropped. A cancelled ctx
// leaves the previous items and error in place.
func (c *Collection[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	prevErr := c.err
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	items, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil
	}
	c.loading = false
	if ctxErr := ctx.Err(); ctxErr != nil && (err == nil || errors.Is(err, ctxErr)) {
		c.err = prevErr
		return ctxErr
	}
	if err != nil {
		c.err = apiclient.Message(err, c.fallback)
		c.logger.WarnContext(ctx, "Collection refresh failed", log.FieldOperation, log.OpRefresh, log.FieldError, c.err)
		return apiclient.Normalize(err, c.fallback)
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	return nil
}

func (c *Collection[T]) Snapshot() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State[T]{Items: slices.Clone(c.items), Loading: c.loading, Err: c.err}
}

func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert appends item, then sorts when an order is configured.
func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	if c.order != nil {
		slices.SortStableFunc(c.items, c.order)
	}
}

// Replace swaps the element with the given id for item. It reports whether
// such an element existed.
func (c *Collection[T]) Replace(id int64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items[i] = item
			return true
		}
	}
	return false
}

// Remove drops every element with the given id.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(it T) bool { return it.EntityID() == id })
	return len(c.items) != n
}

// Reset replaces the list without touching the loading or error state.
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
}

// Create runs fn and inserts its result. Errors come back normalized with
// fallback as the default message and leave the list unchanged.
func (c *Collection[T]) Create(ctx context.Context, fallback string, fn func(context.Context) (T, error)) (T, error) {
	item, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, apiclient.Normalize(err, fallback)
	}
	c.Insert(item)
	return item, nil
}

// Update runs fn and replaces the element with the given id by its result.
func (c *Collection[T]) Update(ctx context.Context, id int64, fallback string, fn func(context.Context) (T, error)) (T, error) {
	item, err := fn(ctx)
	if err != nil {
		var zero T
		return zero, apiclient.Normalize(err, fallback)
	}
	c.Replace(id, item)
	return item, nil
}

// Delete runs fn and removes the element with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id int64, fallback string, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		return apiclient.Normalize(err, fallback)
	}
	c.Remove(id)
	return nil
}
