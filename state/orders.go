package state

import (
	"sync"

	"go.uber.org/zap"

	"gikibites/models"
	"gikibites/statemachine"
	"gikibites/storage"
)

// Orders is the vendor's incoming order list. It starts from the built-in
// seed when nothing usable is persisted.
type Orders struct {
	mu     sync.Mutex
	kv     storage.KV
	log    *zap.Logger
	orders []models.VendorOrder
}

func NewOrders(kv storage.KV, log *zap.Logger) *Orders {
	return &Orders{
		kv:     kv,
		log:    log,
		orders: storage.Load(kv, log, storage.KeyVendorOrders, models.SeedVendorOrders()),
	}
}

// List returns a snapshot of the orders.
func (o *Orders) List() []models.VendorOrder {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot()
}

// SetStatus moves an order to the given status. Only membership in the known
// status set is checked; the fulfilment progression is advisory.
func (o *Orders) SetStatus(id int64, status models.OrderStatus) (models.VendorOrder, error) {
	if err := statemachine.CheckStatus(status); err != nil {
		return models.VendorOrder{}, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.orders {
		if o.orders[i].ID == id {
			o.orders[i].Status = status
			o.flush()
			return o.orders[i], nil
		}
	}
	return models.VendorOrder{}, ErrNotFound
}

func (o *Orders) snapshot() []models.VendorOrder {
	return append([]models.VendorOrder(nil), o.orders...)
}

func (o *Orders) flush() {
	storage.Save(o.kv, o.log, storage.KeyVendorOrders, o.orders)
}
