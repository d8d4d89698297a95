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

// ProductService defines the business logic contract for the catalog.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Barcode:     req.Barcode,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		CostPrice:   req.CostPrice,
		SellPrice:   req.SellPrice,
		DiscountPct: req.DiscountPct,
		TaxRatePct:  req.TaxRatePct,
		StockQty:    req.StockQty,
		MinStock:    req.MinStock,
		BatchNo:     req.BatchNo,
		IsActive:    true,
	}
	if req.ExpiryDate != nil {
		d, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, errors.New("invalid expiry_date")
		}
		p.ExpiryDate = &d
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, len(products))
	for i := range products {
		items[i] = *productToResponse(&products[i])
	}
	return &dto.ProductListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("product not found")
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != "" {
		p.Category = req.Category
	}
	if req.CostPrice != nil {
		p.CostPrice = *req.CostPrice
	}
	if req.SellPrice != nil {
		p.SellPrice = *req.SellPrice
	}
	if req.DiscountPct != nil {
		p.DiscountPct = *req.DiscountPct
	}
	if req.TaxRatePct != nil {
		p.TaxRatePct = *req.TaxRatePct
	}
	if req.StockQty != nil {
		p.StockQty = *req.StockQty
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if req.BatchNo != nil {
		p.BatchNo = req.BatchNo
	}
	if req.ExpiryDate != nil {
		d, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, errors.New("invalid expiry_date")
		}
		p.ExpiryDate = &d
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) error {
	return s.repo.Reactivate(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:          p.ID.String(),
		Barcode:     p.Barcode,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SellPrice:   p.SellPrice,
		DiscountPct: p.DiscountPct,
		TaxRatePct:  p.TaxRatePct,
		StockQty:    p.StockQty,
		MinStock:    p.MinStock,
		BatchNo:     p.BatchNo,
		IsActive:    p.IsActive,
	}
	if p.ExpiryDate != nil {
		d := p.ExpiryDate.Format("2006-01-02")
		resp.ExpiryDate = &d
	}
	return resp
}
