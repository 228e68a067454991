package state

import (
	"errors"
	"strings"
	"sync"
	"time"

	"gikibites/models"
)

// ErrMissingVendorFields rejects a vendor application with blank fields.
var ErrMissingVendorFields = errors.New("state: all vendor fields are required")

// Vendors backs the admin approval panel: an active list and a pending
// application queue. The panel re-seeds per process and is not persisted.
type Vendors struct {
	mu      sync.Mutex
	active  []models.Vendor
	pending []models.Vendor
	lastID  int64
}

func NewVendors() *Vendors {
	v := &Vendors{
		active:  models.SeedVendors(),
		pending: models.SeedPendingVendors(),
	}
	for _, list := range [][]models.Vendor{v.active, v.pending} {
		for _, vd := range list {
			if vd.ID > v.lastID {
				v.lastID = vd.ID
			}
		}
	}
	return v
}

// Active returns a snapshot of approved vendors.
func (v *Vendors) Active() []models.Vendor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Vendor(nil), v.active...)
}

// Pending returns a snapshot of applications awaiting review.
func (v *Vendors) Pending() []models.Vendor {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Vendor(nil), v.pending...)
}

// Approve moves a pending application onto the active list.
func (v *Vendors) Approve(id int64) (models.Vendor, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, vd := range v.pending {
		if vd.ID == id {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			vd.Status = models.VendorActive
			v.active = append(v.active, vd)
			return vd, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

// Reject drops a pending application.
func (v *Vendors) Reject(id int64) (models.Vendor, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, vd := range v.pending {
		if vd.ID == id {
			v.pending = append(v.pending[:i], v.pending[i+1:]...)
			return vd, nil
		}
	}
	return models.Vendor{}, ErrNotFound
}

// Add registers a new vendor straight onto the active list. Every field must
// be filled in and the minimum order must be positive.
func (v *Vendors) Add(vendor models.Vendor) (models.Vendor, error) {
	if strings.TrimSpace(vendor.Name) == "" ||
		strings.TrimSpace(vendor.Cuisines) == "" ||
		strings.TrimSpace(vendor.EstimatedTime) == "" ||
		vendor.MinOrder <= 0 {
		return models.Vendor{}, ErrMissingVendorFields
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	vendor.ID = v.nextID()
	vendor.Status = models.VendorActive
	v.active = append(v.active, vendor)
	return vendor, nil
}

func (v *Vendors) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= v.lastID {
		id = v.lastID + 1
	}
	v.lastID = id
	return id
}
