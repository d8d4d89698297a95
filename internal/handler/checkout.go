package handler

import (
	"net/http"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/apierror"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct{ svc service.CheckoutService }

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// Checkout godoc
// @Summary      Finalize the current cart as a sale
// @Description  Persists the sale atomically: decrements stock, burns redeemed points and dispatches loyalty accrual asynchronously. The cart is cleared only on success.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CheckoutRequest true "Payment and discounts"
// @Success      201  {object} dto.CheckoutResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	op, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Checkout(c.Request.Context(), op, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
