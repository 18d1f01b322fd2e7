package repositories

import (
	"gamestore/internal/models"
)

// ProductFilter is the structured predicate applied to catalog reads.
// Zero-valued fields contribute no condition; the soft-delete condition
// (isActive == true) is always applied by the repository itself.
type ProductFilter struct {
	Type        string
	Console     string
	Genre       string
	MinPrice    *float64
	MaxPrice    *float64
	InStock     bool
	Multiplayer bool
}

// InventoryRepository defines the interface for product data access.
type InventoryRepository interface {
	Create(product *models.Product) error
	FindAll(filter ProductFilter) ([]models.Product, error)
	FindByID(id string) (*models.Product, error)
	UpdateByID(id string, patch map[string]any) (*models.Product, error)
	Deactivate(id string) error
}
