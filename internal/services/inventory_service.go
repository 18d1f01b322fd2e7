package services

import (
	"log"
	"math"
	"regexp"
	"strings"

	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/pkg/rabbitmq"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// isValidObjectID reports whether id has the storage identifier shape.
func isValidObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// InventoryService orchestrates normalization, validation and persistence
// for catalog writes, and filter building for catalog reads.
type InventoryService struct {
	repo     repositories.InventoryRepository
	mqClient *rabbitmq.Client
}

// NewInventoryService creates a new InventoryService. The RabbitMQ client
// may be nil, in which case event publication is skipped.
func NewInventoryService(repo repositories.InventoryRepository, mqClient *rabbitmq.Client) *InventoryService {
	return &InventoryService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// CreateProduct normalizes and validates a raw client payload, then
// persists the resulting product. On validation failure it returns a
// ValidationError carrying every violation and touches no storage.
func (s *InventoryService) CreateProduct(raw map[string]any) (*models.Product, error) {
	record := NormalizeProduct(raw)
	if violations := ValidateProduct(record); len(violations) > 0 {
		return nil, &ValidationError{Messages: violations}
	}

	product := projectProduct(record)
	product.IsActive = true

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product, nil
}

// GetAllProducts retrieves the active products matching the given query
// parameters, newest first.
func (s *InventoryService) GetAllProducts(query map[string]string) ([]models.Product, error) {
	return s.repo.FindAll(BuildProductFilter(query))
}

// GetProductByID retrieves a single active product. A malformed id fails
// before any storage call.
func (s *InventoryService) GetProductByID(id string) (*models.Product, error) {
	if !isValidObjectID(id) {
		return nil, ErrInvalidID
	}
	return s.repo.FindByID(id)
}

// UpdateProduct applies a partial update. The patch is not run through the
// full validation pipeline; instead each supplied field is revalidated
// against the model constraints, and any violation is returned as a
// SchemaError carrying a field-to-message map.
func (s *InventoryService) UpdateProduct(id string, raw map[string]any) (*models.Product, error) {
	if !isValidObjectID(id) {
		return nil, ErrInvalidID
	}

	patch, fields := buildPatch(raw)
	if len(fields) > 0 {
		return nil, &SchemaError{Fields: fields}
	}
	if len(patch) == 0 {
		return s.repo.FindByID(id)
	}

	product, err := s.repo.UpdateByID(id, patch)
	if err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", product)
	return product, nil
}

// DeleteProduct deactivates a product (soft delete): the record is retained
// but excluded from every subsequent read.
func (s *InventoryService) DeleteProduct(id string) error {
	if !isValidObjectID(id) {
		return ErrInvalidID
	}
	if err := s.repo.Deactivate(id); err != nil {
		return err
	}

	s.publishEvent("product.deactivated", &models.Product{ID: id})
	return nil
}

// projectProduct turns a normalized, validated record into the persisted
// model. Fields unknown to the schema are dropped here.
func projectProduct(record map[string]any) *models.Product {
	name, _ := record["name"].(string)
	price, _ := record["price"].(float64)
	stock, _ := record["stock"].(float64)

	product := &models.Product{
		Name:        strings.TrimSpace(name),
		Type:        record["type"].(string),
		Description: record["description"].(string),
		Price:       price,
		Stock:       int(stock),
		ImageURL:    record["imageUrl"].(string),
	}

	if v, ok := record["console"].(string); ok {
		product.Console = v
	}
	if v, ok := record["genre"].(string); ok {
		product.Genre = v
	}
	if v, ok := record["developer"].(string); ok {
		product.Developer = v
	}
	if v, ok := record["publisher"].(string); ok {
		product.Publisher = v
	}
	if v, ok := record["releaseYear"].(float64); ok {
		product.ReleaseYear = int(v)
	}
	if v, ok := record["rating"].(float64); ok {
		product.Rating = v
	}
	if v, ok := record["multiplayer"].(bool); ok {
		product.Multiplayer = v
	}

	return product
}

// buildPatch converts a raw partial-update payload into a column patch,
// revalidating each supplied field against the model constraints. Unknown
// fields are ignored, mirroring the storage schema.
func buildPatch(raw map[string]any) (map[string]any, map[string]string) {
	patch := make(map[string]any)
	fields := make(map[string]string)

	if v, ok := raw["name"]; ok {
		if name, ok := v.(string); ok && strings.TrimSpace(name) != "" {
			patch["name"] = strings.TrimSpace(name)
		} else {
			fields["name"] = "name must be a non-empty string"
		}
	}
	if v, ok := raw["type"]; ok {
		if t, ok := v.(string); ok && models.IsAllowedType(t) {
			patch["type"] = t
		} else {
			fields["type"] = "type must be one of: " + strings.Join(models.AllowedTypes, ", ")
		}
	}
	if v, ok := raw["price"]; ok {
		price := coerceFloat(v)
		switch {
		case math.IsNaN(price):
			fields["price"] = "price must be a valid number"
		case price < 0:
			fields["price"] = "price cannot be negative"
		default:
			patch["price"] = price
		}
	}
	if v, ok := raw["stock"]; ok {
		stock := coerceInt(v)
		switch {
		case math.IsNaN(stock):
			fields["stock"] = "stock must be a valid number"
		case stock < 0:
			fields["stock"] = "stock cannot be negative"
		default:
			patch["stock"] = int(stock)
		}
	}
	if v, ok := raw["rating"]; ok {
		rating := coerceFloat(v)
		if math.IsNaN(rating) || rating < 0 || rating > 5 {
			fields["rating"] = "rating must be a number between 0 and 5"
		} else {
			patch["rating"] = rating
		}
	}
	if v, ok := raw["releaseYear"]; ok {
		year := coerceInt(v)
		if math.IsNaN(year) {
			fields["releaseYear"] = "releaseYear must be a valid number"
		} else {
			patch["release_year"] = int(year)
		}
	}

	stringColumns := map[string]string{
		"description": "description",
		"imageUrl":    "image_url",
		"console":     "console",
		"genre":       "genre",
		"developer":   "developer",
		"publisher":   "publisher",
	}
	for field, column := range stringColumns {
		if v, ok := raw[field]; ok {
			if s, ok := v.(string); ok {
				patch[column] = strings.TrimSpace(s)
			} else {
				fields[field] = field + " must be a string"
			}
		}
	}

	boolColumns := map[string]string{
		"multiplayer": "multiplayer",
		"isActive":    "is_active",
	}
	for field, column := range boolColumns {
		if v, ok := raw[field]; ok {
			if b, ok := v.(bool); ok {
				patch[column] = b
			} else {
				fields[field] = field + " must be a boolean"
			}
		}
	}

	return patch, fields
}

// publishEvent publishes a product lifecycle event, best effort. Failures
// are logged and never fail the originating request.
func (s *InventoryService) publishEvent(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]any{
		"productID": product.ID,
		"name":      product.Name,
		"type":      product.Type,
	}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}
