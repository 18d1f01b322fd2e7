package handlers

import (
	"errors"
	"fmt"
	"log"

	"gamestore/internal/repositories"
	"gamestore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for the product catalog.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	inventoryRoutes := router.Group("/inventory")
	inventoryRoutes.Post("/", h.HandleCreate)
	inventoryRoutes.Get("/", h.HandleReadAll)
	inventoryRoutes.Get("/:id", h.HandleReadOne)
	inventoryRoutes.Put("/:id", h.HandleUpdate)
	inventoryRoutes.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new product from a raw payload. The payload is an
// untyped map so the service can reconcile synonymous field names and mixed
// string/number input before validation.
func (h *InventoryHandler) HandleCreate(c *fiber.Ctx) error {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		log.Printf("Error parsing product request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	product, err := h.service.CreateProduct(raw)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return respond(c, fiber.StatusBadRequest, "Validation errors",
				fiber.Map{"errors": validationErr.Messages})
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return respond(c, fiber.StatusBadRequest, "A product with that name already exists", nil)
		}
		log.Printf("Error creating product: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Internal error creating the product", err.Error())
	}

	return respond(c, fiber.StatusCreated, "Product created successfully", product)
}

// HandleReadAll retrieves the active products matching the query filters.
func (h *InventoryHandler) HandleReadAll(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.Queries())
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Error retrieving products", err.Error())
	}
	return respond(c, fiber.StatusOK, "Products retrieved successfully", products)
}

// HandleReadOne retrieves a single product by its ID.
func (h *InventoryHandler) HandleReadOne(c *fiber.Ctx) error {
	id := c.Params("id")
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return h.respondProductError(c, id, err, "Error retrieving the product")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("Product with ID %s found", id), product)
}

// HandleUpdate applies a partial update to a product.
func (h *InventoryHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		log.Printf("Error parsing update request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	product, err := h.service.UpdateProduct(id, raw)
	if err != nil {
		var schemaErr *services.SchemaError
		if errors.As(err, &schemaErr) {
			return respond(c, fiber.StatusBadRequest, "Model validation error", schemaErr.Fields)
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return respond(c, fiber.StatusBadRequest, "A product with that name already exists", nil)
		}
		return h.respondProductError(c, id, err, "Error updating the product")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("Product with ID %s updated successfully", id), product)
}

// HandleDelete deactivates a product. The record is retained but excluded
// from subsequent reads.
func (h *InventoryHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteProduct(id); err != nil {
		return h.respondProductError(c, id, err, "Error deleting the product")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("Product with ID %s deleted successfully", id), nil)
}

// respondProductError maps the shared id-gate and storage errors to an
// envelope response.
func (h *InventoryHandler) respondProductError(c *fiber.Ctx, id string, err error, fallback string) error {
	if errors.Is(err, services.ErrInvalidID) {
		return respond(c, fiber.StatusBadRequest, "Invalid ID. Must be a 24 character hex string.", nil)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return respond(c, fiber.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id), nil)
	}
	log.Printf("%s %s: %v", fallback, id, err)
	return respond(c, fiber.StatusInternalServerError, fallback, err.Error())
}
