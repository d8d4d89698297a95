package handler

import (
	"net/http"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/apierror"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// GetByID godoc
// @Summary Sale detail with item snapshots
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale UUID"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/sales/{id} [get]
func (h *SalesHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Sale not found"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List sales
// @Description Paginated list of sales filtered by date (default today) and operator.
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param date query string false "YYYY-MM-DD, default today"
// @Param user_id query string false "Operator UUID"
// @Success 200 {object} dto.SaleListResponse
// @Router /v1/sales [get]
func (h *SalesHandler) List(c *gin.Context) {
	var filter dto.SaleFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list sales"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
