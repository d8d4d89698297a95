package handler

import (
	"net/http"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/apierror"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/middleware"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CartHandler operates on the calling operator's cart. The operator is
// identified by the JWT subject, never by a client-supplied ID.
type CartHandler struct{ svc service.CartService }

func NewCartHandler(svc service.CartService) *CartHandler { return &CartHandler{svc: svc} }

func operatorID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Missing credentials"))
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return uuid.Nil, false
	}
	return id, true
}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Adding an existing product accumulates quantity on its line.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddItemRequest true "Product and quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.AddItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddItem(c.Request.Context(), op, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuantity sets the exact quantity of a line. Zero or negative
// removes it.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	lineID, ok := pathUUID(c, "lineId")
	if !ok {
		return
	}
	var req dto.UpdateQuantityRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateQuantity(op, lineID, req.Quantity))
}

func (h *CartHandler) UpdateDiscount(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	lineID, ok := pathUUID(c, "lineId")
	if !ok {
		return
	}
	var req dto.UpdateDiscountRequest
	if !bindAndValidate(c, &req) {
		return
	}
	c.JSON(http.StatusOK, h.svc.UpdateDiscount(op, lineID, req.DiscountPct))
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	lineID, ok := pathUUID(c, "lineId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.RemoveItem(op, lineID))
}

func (h *CartHandler) SetCustomer(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.SetCustomerRequest
	if !bindAndValidate(c, &req) {
		return
	}
	var customerID *uuid.UUID
	if req.CustomerID != nil {
		id, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid customer_id"))
			return
		}
		customerID = &id
	}
	c.JSON(http.StatusOK, h.svc.SetCustomer(op, customerID))
}

func (h *CartHandler) Clear(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Clear(op))
}

// Get godoc
// @Summary Current cart with derived totals
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /v1/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Get(op))
}
