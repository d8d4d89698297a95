package service

import (
	"context"
	"errors"
	"time"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"

	"github.com/google/uuid"
)

// SaleService is the read model over persisted sales. Sales are immutable
// snapshots — there is no update path here.
type SaleService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
}

type saleService struct {
	repo repository.SaleRepository
}

func NewSaleService(repo repository.SaleRepository) SaleService {
	return &saleService{repo: repo}
}

func (s *saleService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("sale not found")
	}
	return saleToResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, len(sales))
	for i := range sales {
		items[i] = *saleToResponse(&sales[i])
	}
	return &dto.SaleListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func saleToResponse(v *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID.String(),
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			DiscountPct: it.DiscountPct,
			TaxRatePct:  it.TaxRatePct,
			Subtotal:    it.Subtotal,
		})
	}
	operatorName := ""
	if v.User != nil {
		operatorName = v.User.FullName
	}
	resp := &dto.SaleResponse{
		ID:             v.ID.String(),
		InvoiceNo:      v.InvoiceNo,
		UserID:         v.UserID.String(),
		OperatorName:   operatorName,
		Items:          items,
		Subtotal:       v.Subtotal,
		Discount:       v.Discount,
		Tax:            v.Tax,
		Total:          v.Total,
		AmountTendered: v.AmountTendered,
		Change:         v.Change,
		PointsRedeemed: v.PointsRedeemed,
		PaymentMethod:  v.PaymentMethod,
		CreatedAt:      v.CreatedAt.Format(time.RFC3339),
	}
	if v.CustomerID != nil {
		id := v.CustomerID.String()
		resp.CustomerID = &id
	}
	return resp
}
