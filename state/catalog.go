package state

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/storage"
)

// Catalog is the vendor's product list.
type Catalog struct {
	mu       sync.Mutex
	kv       storage.KV
	log      *zap.Logger
	products []models.Product
	lastID   int64
}

func NewCatalog(kv storage.KV, log *zap.Logger) *Catalog {
	ct := &Catalog{
		kv:       kv,
		log:      log,
		products: storage.Load(kv, log, storage.KeyVendorProducts, []models.Product{}),
	}
	for _, p := range ct.products {
		if p.ID > ct.lastID {
			ct.lastID = p.ID
		}
	}
	return ct
}

// List returns a snapshot of the catalog in insertion order.
func (ct *Catalog) List() []models.Product {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return append([]models.Product(nil), ct.products...)
}

// Add assigns the product an id and appends it. Field validation happens at
// the form boundary; the catalog only owns id assignment and ordering.
func (ct *Catalog) Add(p models.Product) models.Product {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	p.ID = ct.nextID()
	ct.products = append(ct.products, p)
	ct.flush()
	return p
}

// Delete removes exactly the product with the given id, preserving the order
// of the rest. Unknown ids return ErrNotFound.
func (ct *Catalog) Delete(id int64) error {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	for i, p := range ct.products {
		if p.ID == id {
			ct.products = append(ct.products[:i], ct.products[i+1:]...)
			ct.flush()
			return nil
		}
	}
	return ErrNotFound
}

// nextID draws from the millisecond wall clock but never repeats or goes
// backwards, even for two adds within the same millisecond.
func (ct *Catalog) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= ct.lastID {
		id = ct.lastID + 1
	}
	ct.lastID = id
	return id
}

func (ct *Catalog) flush() {
	storage.Save(ct.kv, ct.log, storage.KeyVendorProducts, ct.products)
}
