package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/cart"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartService mutates the operator's live cart. New lines are populated with
// the product's current price, discount and tax defaults; once the line
// exists the cart never re-fetches them.
type CartService interface {
	AddItem(ctx context.Context, operatorID uuid.UUID, req dto.AddItemRequest) (*dto.CartResponse, error)
	UpdateQuantity(operatorID uuid.UUID, lineID uuid.UUID, quantity int) *dto.CartResponse
	UpdateDiscount(operatorID uuid.UUID, lineID uuid.UUID, pct decimal.Decimal) *dto.CartResponse
	RemoveItem(operatorID uuid.UUID, lineID uuid.UUID) *dto.CartResponse
	SetCustomer(operatorID uuid.UUID, customerID *uuid.UUID) *dto.CartResponse
	Clear(operatorID uuid.UUID) *dto.CartResponse
	Get(operatorID uuid.UUID) *dto.CartResponse
}

type cartService struct {
	store    *cart.Store
	products repository.ProductRepository
}

func NewCartService(store *cart.Store, products repository.ProductRepository) CartService {
	return &cartService{store: store, products: products}
}

func (s *cartService) AddItem(ctx context.Context, operatorID uuid.UUID, req dto.AddItemRequest) (*dto.CartResponse, error) {
	pid, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product_id: %w", err)
	}
	p, err := s.products.FindByID(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("product %s not found", req.ProductID)
	}
	if !p.IsActive {
		return nil, errors.New("product is inactive and cannot be sold")
	}

	c := s.store.Get(operatorID)
	c.AddItem(cart.Item{
		ProductID:   p.ID,
		Name:        p.Name,
		UnitPrice:   p.SellPrice,
		Quantity:    req.Quantity,
		DiscountPct: p.DiscountPct,
		TaxRatePct:  p.TaxRatePct,
	})
	return cartToResponse(c), nil
}

func (s *cartService) UpdateQuantity(operatorID uuid.UUID, lineID uuid.UUID, quantity int) *dto.CartResponse {
	c := s.store.Get(operatorID)
	c.UpdateQuantity(lineID, quantity)
	return cartToResponse(c)
}

func (s *cartService) UpdateDiscount(operatorID uuid.UUID, lineID uuid.UUID, pct decimal.Decimal) *dto.CartResponse {
	c := s.store.Get(operatorID)
	c.UpdateDiscount(lineID, pct)
	return cartToResponse(c)
}

func (s *cartService) RemoveItem(operatorID uuid.UUID, lineID uuid.UUID) *dto.CartResponse {
	c := s.store.Get(operatorID)
	c.RemoveItem(lineID)
	return cartToResponse(c)
}

// SetCustomer does not validate the id against the customer directory — that
// check belongs to the customers module; checkout re-resolves the customer
// anyway before redeeming points.
func (s *cartService) SetCustomer(operatorID uuid.UUID, customerID *uuid.UUID) *dto.CartResponse {
	c := s.store.Get(operatorID)
	c.SetCustomer(customerID)
	return cartToResponse(c)
}

func (s *cartService) Clear(operatorID uuid.UUID) *dto.CartResponse {
	c := s.store.Get(operatorID)
	c.Clear()
	return cartToResponse(c)
}

func (s *cartService) Get(operatorID uuid.UUID) *dto.CartResponse {
	return cartToResponse(s.store.Get(operatorID))
}

func cartToResponse(c *cart.Cart) *dto.CartResponse {
	items := c.Items()
	resp := &dto.CartResponse{
		Items:    make([]dto.CartItemResponse, 0, len(items)),
		Subtotal: c.Subtotal().Round(2),
		Discount: c.DiscountAmount().Round(2),
		Tax:      c.TaxAmount().Round(2),
		Total:    c.Total().Round(2),
	}
	if id := c.CustomerID(); id != nil {
		s := id.String()
		resp.CustomerID = &s
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:          it.ID.String(),
			ProductID:   it.ProductID.String(),
			Name:        it.Name,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			DiscountPct: it.DiscountPct,
			TaxRatePct:  it.TaxRatePct,
		})
	}
	return resp
}
