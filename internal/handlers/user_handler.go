package handlers

import (
	"errors"
	"fmt"
	"log"

	"gamestore/internal/models"
	"gamestore/internal/repositories"
	"gamestore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts and login.
type UserHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleRegister)
	userRoutes.Post("/login", h.HandleLogin)
	userRoutes.Get("/", h.HandleReadAll)
	userRoutes.Get("/:id", h.HandleReadOne)
	userRoutes.Put("/:id", h.HandleUpdate)
	userRoutes.Delete("/:id", h.HandleDelete)
}

// RegisterRequest represents the request body for registration. The model
// itself never deserializes a password, so the field lives here.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// HandleRegister handles new user registration.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Validation failed", validationFieldErrors(err))
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.authService.RegisterUser(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return respond(c, fiber.StatusBadRequest, "Username or email already registered", nil)
		}
		log.Printf("Error registering user: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Error creating user", err.Error())
	}

	return respond(c, fiber.StatusCreated, "User created successfully", user)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin authenticates a user by email and issues a JWT.
func (h *UserHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing login request body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	if err := h.validate.Struct(req); err != nil {
		return respond(c, fiber.StatusBadRequest, "Validation failed", validationFieldErrors(err))
	}

	token, user, err := h.authService.LoginUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return respond(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return respond(c, fiber.StatusInternalServerError, "Error during login", err.Error())
	}

	return respond(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// HandleReadAll retrieves all users.
func (h *UserHandler) HandleReadAll(c *fiber.Ctx) error {
	users, err := h.authService.GetAllUsers()
	if err != nil {
		log.Printf("Error retrieving users: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Error retrieving users", err.Error())
	}
	return respond(c, fiber.StatusOK, "Users retrieved successfully", users)
}

// HandleReadOne retrieves a single user by their ID.
func (h *UserHandler) HandleReadOne(c *fiber.Ctx) error {
	id := c.Params("id")
	user, err := h.authService.GetUserByID(id)
	if err != nil {
		return h.respondUserError(c, id, err, "Error retrieving the user")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("User with ID %s found", id), user)
}

// HandleUpdate applies a partial update to a user.
func (h *UserHandler) HandleUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var patch services.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing user update body: %v", err)
		return respond(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := h.validate.Struct(patch); err != nil {
		return respond(c, fiber.StatusBadRequest, "Validation failed", validationFieldErrors(err))
	}

	user, err := h.authService.UpdateUser(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return respond(c, fiber.StatusBadRequest, "Username or email already registered", nil)
		}
		return h.respondUserError(c, id, err, "Error updating the user")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("User with ID %s updated successfully", id), user)
}

// HandleDelete removes a user by their ID.
func (h *UserHandler) HandleDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.authService.DeleteUser(id); err != nil {
		return h.respondUserError(c, id, err, "Error deleting the user")
	}
	return respond(c, fiber.StatusOK, fmt.Sprintf("User with ID %s deleted successfully", id), nil)
}

func (h *UserHandler) respondUserError(c *fiber.Ctx, id string, err error, fallback string) error {
	if errors.Is(err, services.ErrInvalidID) {
		return respond(c, fiber.StatusBadRequest, "Invalid ID. Must be a 24 character hex string.", nil)
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return respond(c, fiber.StatusNotFound, fmt.Sprintf("User with ID %s not found", id), nil)
	}
	log.Printf("%s %s: %v", fallback, id, err)
	return respond(c, fiber.StatusInternalServerError, fallback, err.Error())
}

// validationFieldErrors flattens validator errors into a field-to-message map.
func validationFieldErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			fieldErrors[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return fieldErrors
}
