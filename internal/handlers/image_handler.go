package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxImageSize caps uploads at 5MB.
const maxImageSize = 5 * 1024 * 1024

// ImageHandler handles product image uploads. Uploaded files are served
// statically under /uploads by the app.
type ImageHandler struct {
	uploadDir string
	baseURL   string
}

// NewImageHandler creates a new ImageHandler storing files in uploadDir.
func NewImageHandler(uploadDir, baseURL string) *ImageHandler {
	return &ImageHandler{
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}
}

// RegisterRoutes registers the image routes with the Fiber app.
func (h *ImageHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/", h.HandleUpload)
}

// HandleUpload stores a single multipart image under a unique filename and
// returns its public URL.
func (h *ImageHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return respond(c, fiber.StatusBadRequest, "No file provided", nil)
	}

	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return respond(c, fiber.StatusBadRequest, "Only image files are allowed", nil)
	}
	if file.Size > maxImageSize {
		return respond(c, fiber.StatusBadRequest, "Image exceeds the 5MB size limit", nil)
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Error creating upload directory: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Error uploading the image", err.Error())
	}

	filename := fmt.Sprintf("image-%s%s", uuid.New().String(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, filename)); err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		return respond(c, fiber.StatusInternalServerError, "Error uploading the image", err.Error())
	}

	return respond(c, fiber.StatusOK, "Image uploaded successfully", fiber.Map{
		"filename":     filename,
		"originalName": file.Filename,
		"url":          h.baseURL + "/uploads/" + filename,
		"size":         file.Size,
	})
}
