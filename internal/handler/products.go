package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/apierror"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "New product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/products [post]
func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name or barcode substring"
// @Param category query string false "Category filter"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} dto.ProductListResponse
// @Router /v1/products [get]
func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list products"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Deactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Deactivate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Reactivate(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivate(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Price check ──────────────────────────────────────────────────────────────

const priceCacheTTL = 4 * time.Hour

// PriceCheckHandler serves the public price check endpoint.
// No authentication required and no side effects whatsoever.
type PriceCheckHandler struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewPriceCheckHandler(repo repository.ProductRepository, rdb *redis.Client) *PriceCheckHandler {
	return &PriceCheckHandler{repo: repo, rdb: rdb}
}

// GetPriceByBarcode godoc
// @Summary Price lookup by barcode (no authentication)
// @Tags price
// @Produce json
// @Param barcode path string true "Barcode"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/price/{barcode} [get]
func (h *PriceCheckHandler) GetPriceByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	ctx := c.Request.Context()
	cacheKey := "price:" + barcode

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.PriceCheckResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	product, err := h.repo.FindByBarcode(ctx, barcode)
	if err != nil || !product.IsActive {
		c.JSON(http.StatusNotFound, apierror.New("Product not found"))
		return
	}

	resp := dto.PriceCheckResponse{
		Name:       product.Name,
		SellPrice:  product.SellPrice,
		TaxRatePct: product.TaxRatePct,
		InStock:    product.StockQty > 0,
		Category:   product.Category,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
