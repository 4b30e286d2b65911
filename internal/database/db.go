// Package database persists the camp catalog in SQLite through gorm and
// serves it back as a catalog source.
package database

import (
	"context"
	"fmt"

	"campconnect/internal/catalog"
	"campconnect/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is a gorm-backed catalog source
type Store struct {
	db *gorm.DB
}

// Open opens the SQLite database at path; ":memory:" keeps it in process
func Open(path string) (*Store, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	// an in-memory database exists per connection
	db.DB().SetMaxOpenConns(1)
	return &Store{db: db}, nil
}

// DB returns the underlying gorm handle
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Migrate creates or updates the catalog tables
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(
		&InventoryRecord{},
		&VendorRecord{},
		&VendorProductRecord{},
	).Error
}

// Seed writes ds into an empty database. It reports whether anything was
// written; a database that already holds records is left untouched.
func (s *Store) Seed(ctx context.Context, ds *catalog.Dataset) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var inventoryCount, vendorCount int
	if err := s.db.Model(&InventoryRecord{}).Count(&inventoryCount).Error; err != nil {
		return false, err
	}
	if err := s.db.Model(&VendorRecord{}).Count(&vendorCount).Error; err != nil {
		return false, err
	}
	if inventoryCount > 0 || vendorCount > 0 {
		return false, nil
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}
	for _, item := range ds.Inventory {
		rec := inventoryRecordFrom(item)
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to seed inventory item %s: %w", item.ID, err)
		}
	}
	for _, v := range ds.Vendors {
		rec := vendorRecordFrom(v)
		if err := tx.Create(&rec).Error; err != nil {
			tx.Rollback()
			return false, fmt.Errorf("failed to seed vendor %s: %w", v.ID, err)
		}
		for pos, p := range v.Products {
			prod := productRecordFrom(rec.ID, pos, p)
			if err := tx.Create(&prod).Error; err != nil {
				tx.Rollback()
				return false, fmt.Errorf("failed to seed product %q of vendor %s: %w", p.Name, v.ID, err)
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		return false, err
	}
	return true, nil
}

// Load implements catalog.Source. Records come back in insertion order.
func (s *Store) Load(ctx context.Context) (*catalog.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []InventoryRecord
	if err := s.db.Order("id asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	var vendors []VendorRecord
	err := s.db.Preload("Products", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Order("id asc").Find(&vendors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load vendors: %w", err)
	}

	ds := &catalog.Dataset{
		Inventory: make([]models.InventoryItem, 0, len(items)),
		Vendors:   make([]models.Vendor, 0, len(vendors)),
	}
	for _, rec := range items {
		ds.Inventory = append(ds.Inventory, rec.toModel())
	}
	for _, rec := range vendors {
		ds.Vendors = append(ds.Vendors, rec.toModel())
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
