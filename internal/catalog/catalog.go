// Package catalog owns the current inventory and vendor collections.
// A reload swaps in a whole new snapshot; published snapshots are never
// modified, so readers can hold one without locking.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"campconnect/internal/models"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned when a record id is not in the current snapshot
var ErrNotFound = errors.New("not found")

// Snapshot is an immutable, versioned copy of the dataset
type Snapshot struct {
	Version  uint64
	LoadedAt time.Time
	Dataset
}

// ReloadHook is called after every reload attempt
type ReloadHook func(snap *Snapshot, err error)

// Catalog serves the latest snapshot loaded from its source
type Catalog struct {
	source  Source
	log     logrus.FieldLogger
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
	reload  sync.Mutex
	hooks   []ReloadHook
}

// Option configures a Catalog
type Option func(*Catalog)

// WithReloadHook registers a hook run after each reload
func WithReloadHook(hook ReloadHook) Option {
	return func(c *Catalog) {
		c.hooks = append(c.hooks, hook)
	}
}

// New creates a catalog and performs the initial load
func New(ctx context.Context, source Source, log logrus.FieldLogger, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		source: source,
		log:    log.WithField("module", "catalog"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload fetches a fresh dataset and publishes it as a new snapshot.
// On failure the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	c.reload.Lock()
	defer c.reload.Unlock()

	ds, err := c.source.Load(ctx)
	if err != nil {
		err = fmt.Errorf("failed to load catalog: %w", err)
		c.log.WithError(err).Error("catalog reload failed")
		c.notify(nil, err)
		return err
	}

	snap := &Snapshot{
		Version:  c.version.Add(1),
		LoadedAt: time.Now(),
		Dataset:  *ds,
	}
	c.current.Store(snap)

	c.log.WithFields(logrus.Fields{
		"version":   snap.Version,
		"inventory": len(snap.Inventory),
		"vendors":   len(snap.Vendors),
	}).Info("catalog loaded")
	c.notify(snap, nil)
	return nil
}

func (c *Catalog) notify(snap *Snapshot, err error) {
	for _, hook := range c.hooks {
		hook(snap, err)
	}
}

// Snapshot returns the current snapshot
func (c *Catalog) Snapshot() *Snapshot {
	return c.current.Load()
}

// Inventory returns the current inventory collection; callers must not modify it
func (c *Catalog) Inventory() []models.InventoryItem {
	return c.Snapshot().Inventory
}

// Vendors returns the current vendor collection; callers must not modify it
func (c *Catalog) Vendors() []models.Vendor {
	return c.Snapshot().Vendors
}

// Item looks up an inventory item by id
func (c *Catalog) Item(id string) (models.InventoryItem, error) {
	for _, item := range c.Inventory() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, fmt.Errorf("inventory item %s: %w", id, ErrNotFound)
}

// Vendor looks up a vendor by id
func (c *Catalog) Vendor(id string) (models.Vendor, error) {
	for _, v := range c.Vendors() {
		if v.ID == id {
			return v, nil
		}
	}
	return models.Vendor{}, fmt.Errorf("vendor %s: %w", id, ErrNotFound)
}
