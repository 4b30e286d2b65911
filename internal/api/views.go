package api

import (
	"context"
	"errors"
	"time"

	"campconnect/internal/cache"
	"campconnect/internal/view"

	"github.com/sirupsen/logrus"
)

const (
	entityInventory = "inventory"
	entityVendors   = "vendors"
)

// inventoryView assembles the inventory view over the current snapshot,
// going through the view cache first. Cache failures only cost a recompute.
func (s *Server) inventoryView(ctx context.Context, f view.InventoryFilter, sortKey string) view.InventoryView {
	snap := s.catalog.Snapshot()
	f = f.Normalize()
	_, applied := view.InventoryComparator(sortKey)
	key := cache.Key(entityInventory, snap.Version, f.Search, f.Category, f.Status, applied)

	var v view.InventoryView
	if s.lookup(ctx, key, &v) {
		return v
	}

	start := time.Now()
	v = view.AssembleInventory(snap.Inventory, f, applied)
	s.monitor.ObserveAssembly(entityInventory, v.SortKey, time.Since(start), v.Showing, v.Total)
	s.store(ctx, key, v)
	return v
}

// vendorView is inventoryView for the suppliers page
func (s *Server) vendorView(ctx context.Context, f view.VendorFilter, sortKey string) view.VendorView {
	snap := s.catalog.Snapshot()
	f = f.Normalize()
	_, applied := view.VendorComparator(sortKey)
	key := cache.Key(entityVendors, snap.Version, f.Search, f.Product, f.Dietary, f.MaxDistance, applied)

	var v view.VendorView
	if s.lookup(ctx, key, &v) {
		return v
	}

	start := time.Now()
	v = view.AssembleVendors(snap.Vendors, f, applied)
	s.monitor.ObserveAssembly(entityVendors, v.SortKey, time.Since(start), v.Showing, v.Total)
	s.store(ctx, key, v)
	return v
}

func (s *Server) lookup(ctx context.Context, key string, dst any) bool {
	err := s.cache.Get(ctx, key, dst)
	if err == nil {
		s.monitor.ObserveCache(true)
		return true
	}
	s.monitor.ObserveCache(false)
	if !errors.Is(err, cache.ErrMiss) {
		s.log.WithFields(logrus.Fields{"op": "lookup", "key": key}).WithError(err).Warn("view cache read failed")
	}
	return false
}

func (s *Server) store(ctx context.Context, key string, v any) {
	if err := s.cache.Set(ctx, key, v); err != nil {
		s.log.WithFields(logrus.Fields{"op": "store", "key": key}).WithError(err).Warn("view cache write failed")
	}
}
