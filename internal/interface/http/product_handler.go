package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/lojinha/catalog-api/internal/application"
	"github.com/lojinha/catalog-api/internal/domain/repository"
	"github.com/lojinha/catalog-api/pkg/helpers"
	"github.com/lojinha/catalog-api/pkg/response"
	"github.com/lojinha/catalog-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type createProductRequest struct {
	Title       string              `json:"title" binding:"required,min=3"`
	Description string              `json:"description" binding:"required,min=10"`
	Price       *validation.Number  `json:"price" binding:"required,gt=0"`
	ImageURL    string              `json:"imageUrl" binding:"required"`
	IsFeatured  *validation.Boolean `json:"isFeatured"`
}

type updateProductRequest struct {
	Title       *string             `json:"title" binding:"omitnil,min=3"`
	Description *string             `json:"description" binding:"omitnil,min=10"`
	Price       *validation.Number  `json:"price" binding:"omitnil,gt=0"`
	ImageURL    *string             `json:"imageUrl" binding:"omitnil,min=1"`
	IsFeatured  *validation.Boolean `json:"isFeatured"`
}

// parseID accepts only positive integer path ids.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "Invalid id: must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.List(c.Request.Context())
	if err != nil {
		helpers.LogError(h.Logger, "list products failed", err, nil)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		helpers.LogError(h.Logger, "get product failed", err, logrus.Fields{"product_id": id})
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create handles POST /products (authenticated)
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	in := application.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       float64(*req.Price),
		ImageURL:    req.ImageURL,
	}
	if req.IsFeatured != nil {
		in.IsFeatured = bool(*req.IsFeatured)
	}

	p, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		helpers.LogError(h.Logger, "create product failed", err, nil)
		response.Internal(c)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update handles PUT /products/:id (authenticated, partial body)
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Invalid(c, err)
		return
	}

	in := application.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Price != nil {
		price := float64(*req.Price)
		in.Price = &price
	}
	if req.IsFeatured != nil {
		featured := bool(*req.IsFeatured)
		in.IsFeatured = &featured
	}

	p, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		helpers.LogError(h.Logger, "update product failed", err, logrus.Fields{"product_id": id})
		response.Internal(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /products/:id (authenticated)
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		helpers.LogError(h.Logger, "delete product failed", err, logrus.Fields{"product_id": id})
		response.Internal(c)
		return
	}
	c.Status(http.StatusNoContent)
}
