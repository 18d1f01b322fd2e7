package models

import "time"

// Product types form a closed enumeration shared by the normalizer,
// the validator and the storage schema.
const (
	TypeConsoles    = "consoles"
	TypeAccessories = "accessories"
	TypeGames       = "games"
)

// AllowedTypes lists the valid product types in canonical order.
var AllowedTypes = []string{TypeConsoles, TypeAccessories, TypeGames}

// IsAllowedType reports whether t is a member of the product type enumeration.
func IsAllowedType(t string) bool {
	for _, allowed := range AllowedTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

// PlaceholderImageURL is assigned to products created without an image.
const PlaceholderImageURL = "https://placehold.co/400x300/e9ecef/212529?text=Sin+Imagen"

// Product represents an item in the store catalog: a console, an accessory
// or a game. Category-specific fields (Console, Genre, Developer, ...) are
// optional and deliberately not tied to the product type.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(24)"`
	Name        string  `json:"name" gorm:"uniqueIndex;type:varchar(200);not null"`
	Type        string  `json:"type" gorm:"type:varchar(20);not null"`
	Description string  `json:"description"`
	Price       float64 `json:"price" gorm:"check:price >= 0"`
	Stock       int     `json:"stock" gorm:"check:stock >= 0"`
	ImageURL    string  `json:"imageUrl"`
	// IsActive is the soft-delete flag: false means logically deleted
	// but physically retained.
	IsActive bool `json:"isActive"`

	// Game-specific fields.
	Console     string  `json:"console,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Developer   string  `json:"developer,omitempty"`
	Publisher   string  `json:"publisher,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Multiplayer bool    `json:"multiplayer"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
