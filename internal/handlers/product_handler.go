package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <title>Product Catalog Administration</title>
</head>
<body>
    <h1>Product Catalog Administration</h1>
    <p>REST API for the product catalog. See <a href="/products">/products</a>.</p>
</body>
</html>`

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleIndex)
	router.Get("/health", h.HandleHealth)

	products := router.Group("/products")
	products.Get("/", h.HandleListProducts)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
}

// HandleIndex serves the static index page.
func (h *ProductHandler) HandleIndex(c *fiber.Ctx) error {
	return c.Type("html").SendString(indexHTML)
}

// HandleHealth is the liveness probe.
func (h *ProductHandler) HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OK",
	})
}

// HandleListProducts lists products, optionally filtered by the name,
// category and available query parameters. Filters combine as independent
// exact matches.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var filter repositories.ProductFilter

	if name := c.Query("name"); name != "" {
		filter.Name = &name
	}
	if categoryName := c.Query("category"); categoryName != "" {
		category, err := models.ParseCategory(categoryName)
		if err != nil {
			return h.errorResponse(c, err)
		}
		filter.Category = &category
	}
	if availableParam := c.Query("available"); availableParam != "" {
		available, err := strconv.ParseBool(strings.ToLower(availableParam))
		if err != nil {
			return h.errorResponse(c, models.NewDataValidationError(
				"Invalid type for boolean [available]: "+availableParam))
		}
		filter.Available = &available
	}

	products, err := h.service.ListProducts(filter)
	if err != nil {
		return h.errorResponse(c, err)
	}

	results := make([]map[string]interface{}, 0, len(products))
	for i := range products {
		results = append(results, products[i].Serialize())
	}
	return c.Status(fiber.StatusOK).JSON(results)
}

// HandleGetProduct reads a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", c.Params("id")),
		})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product.Serialize())
}

// HandleCreateProduct creates a product from a JSON payload.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	data, err := h.jsonBody(c)
	if err != nil {
		return h.errorResponse(c, err)
	}

	product := new(models.Product)
	if err := product.Deserialize(data); err != nil {
		return h.errorResponse(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return h.validationResponse(c, err)
	}

	if err := h.service.CreateProduct(product); err != nil {
		return h.errorResponse(c, err)
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/products/%d", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product.Serialize())
}

// HandleUpdateProduct updates an existing product. The row is fetched first
// so an unknown identity reports 404 before the payload is validated.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", c.Params("id")),
		})
	}

	product, err := h.service.GetProduct(id)
	if err != nil {
		return h.errorResponse(c, err)
	}

	data, err := h.jsonBody(c)
	if err != nil {
		return h.errorResponse(c, err)
	}
	if err := product.Deserialize(data); err != nil {
		return h.errorResponse(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return h.validationResponse(c, err)
	}

	product.ID = id
	if err := h.service.UpdateProduct(product); err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product.Serialize())
}

// HandleDeleteProduct deletes a product. Deleting an unknown identity
// reports 404.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Product with ID %s not found", c.Params("id")),
		})
	}

	if err := h.service.DeleteProduct(id); err != nil {
		return h.errorResponse(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}

// jsonBody enforces the JSON content type and decodes the request body into
// an untyped map. A missing or non-JSON content type is a 415.
func (h *ProductHandler) jsonBody(c *fiber.Ctx) (map[string]interface{}, error) {
	contentType := strings.ToLower(c.Get(fiber.HeaderContentType))
	if !strings.HasPrefix(contentType, fiber.MIMEApplicationJSON) {
		return nil, errUnsupportedMediaType
	}

	var data map[string]interface{}
	if err := json.Unmarshal(c.Body(), &data); err != nil {
		return nil, models.NewDataValidationError("Invalid product: body of request contained bad or no data")
	}
	return data, nil
}

var errUnsupportedMediaType = errors.New("content type must be application/json")

// errorResponse translates an error kind into its HTTP status:
// DataValidationError -> 400, ErrNotFound -> 404, media type -> 415,
// anything else -> 500.
func (h *ProductHandler) errorResponse(c *fiber.Ctx, err error) error {
	var validationErr *models.DataValidationError
	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": validationErr.Message,
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case errors.Is(err, errUnsupportedMediaType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		log.Printf("Unexpected error handling %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

// validationResponse shapes validator.Struct failures as a 400 with
// per-field messages.
func (h *ProductHandler) validationResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return h.errorResponse(c, err)
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}
