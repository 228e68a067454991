// Package state holds the domain collections: cart, vendor catalog, vendor
// orders and the admin vendor lists. Each persisted collection owns exactly
// one storage key and rewrites its full document on every mutation.
package state

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/storage"
)

// ErrInvalidQuantity rejects cart quantities below 1.
var ErrInvalidQuantity = errors.New("state: quantity must be at least 1")

// ErrNotFound is returned when an id is not in the collection.
var ErrNotFound = errors.New("state: no such id")

// Cart is the customer's current order draft, keyed by item id.
type Cart struct {
	mu    sync.Mutex
	kv    storage.KV
	log   *zap.Logger
	items []models.CartItem
}

func NewCart(kv storage.KV, log *zap.Logger) *Cart {
	return &Cart{
		kv:    kv,
		log:   log,
		items: storage.Load(kv, log, storage.KeyCart, []models.CartItem{}),
	}
}

// List returns a snapshot of the cart in insertion order.
func (c *Cart) List() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Total returns the running price across all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Add puts an item in the cart. Re-adding an id already present bumps that
// line's quantity by 1 instead of duplicating it; a new line always starts
// at quantity 1.
func (c *Cart) Add(item models.CartItem) []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity++
			c.flush()
			return c.snapshot()
		}
	}

	item.Quantity = 1
	c.items = append(c.items, item)
	c.flush()
	return c.snapshot()
}

// Remove drops the line with the given id; unknown ids are a no-op.
func (c *Cart) Remove(id int64) []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.flush()
	return c.snapshot()
}

// UpdateQuantity sets the quantity of a line. Quantities below 1 are
// rejected and leave the cart unchanged.
func (c *Cart) UpdateQuantity(id int64, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			c.flush()
			return nil
		}
	}
	return ErrNotFound
}

func (c *Cart) snapshot() []models.CartItem {
	return append([]models.CartItem(nil), c.items...)
}

func (c *Cart) flush() {
	storage.Save(c.kv, c.log, storage.KeyCart, c.items)
}
