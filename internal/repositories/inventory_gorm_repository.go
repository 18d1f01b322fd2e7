package repositories

import (
	"errors"
	"fmt"

	"gamestore/internal/models"

	"gorm.io/gorm"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
// Deactivated products are invisible to every read and write: the catalog
// uses soft deletion, so FindByID, UpdateByID and Deactivate all scope
// their queries to active records.
type GORMInventoryRepository struct {
	db *gorm.DB
}

// NewGORMInventoryRepository creates a new instance of GORMInventoryRepository.
func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{
		db: db,
	}
}

// Create persists a new product, assigning a fresh id when none is set.
func (r *GORMInventoryRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = newObjectID()
	}
	if err := r.db.Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product %q: %w", product.Name, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindAll retrieves active products matching the filter, newest first.
func (r *GORMInventoryRepository) FindAll(filter ProductFilter) ([]models.Product, error) {
	query := r.db.Where("is_active = ?", true)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Console != "" {
		query = query.Where("console = ?", filter.Console)
	}
	if filter.Genre != "" {
		query = query.Where("genre = ?", filter.Genre)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.InStock {
		query = query.Where("stock > ?", 0)
	}
	if filter.Multiplayer {
		query = query.Where("multiplayer = ?", true)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a single active product by its ID.
func (r *GORMInventoryRepository) FindByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// UpdateByID applies a partial update to an active product and returns
// the updated record. Patch keys are column names.
func (r *GORMInventoryRepository) UpdateByID(id string, patch map[string]any) (*models.Product, error) {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(patch)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("product with ID %s: %w", id, ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return r.FindByID(id)
}

// Deactivate marks an active product as inactive (soft delete).
func (r *GORMInventoryRepository) Deactivate(id string) error {
	res := r.db.Model(&models.Product{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
