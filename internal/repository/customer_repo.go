package repository

import (
	"context"
	"errors"

	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/dto"
	"github.com/ShejanMahamud/pharmacy-pos-sub000/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInsufficientPoints is returned by DeductPointsTx when the balance would
// go negative.
var ErrInsufficientPoints = errors.New("insufficient loyalty points")

type CustomerRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error)
	Update(ctx context.Context, c *model.Customer) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	AddPoints(ctx context.Context, id uuid.UUID, points int64) error
	DeductPointsTx(tx *gorm.DB, id uuid.UUID, points int64) error
}

type customerRepo struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) CustomerRepository { return &customerRepo{db: db} }

func (r *customerRepo) Create(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *customerRepo) List(ctx context.Context, filter dto.CustomerFilter) ([]model.Customer, int64, error) {
	var customers []model.Customer
	var total int64
	offset := (filter.Page - 1) * filter.Limit

	q := r.db.WithContext(ctx).Model(&model.Customer{}).Where("is_active = true")
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("name ILIKE ? OR phone = ?", like, filter.Search)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&customers).Error
	return customers, total, err
}

func (r *customerRepo) Update(ctx context.Context, c *model.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *customerRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", id).Update("is_active", false).Error
}

// AddPoints accrues earned points. Called by the loyalty worker after the
// sale has committed, outside the checkout transaction.
func (r *customerRepo) AddPoints(ctx context.Context, id uuid.UUID, points int64) error {
	return r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("id = ?", id).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
}

// DeductPointsTx burns redeemed points inside the checkout transaction.
// The WHERE guard keeps the balance from going negative under concurrency.
func (r *customerRepo) DeductPointsTx(tx *gorm.DB, id uuid.UUID, points int64) error {
	res := tx.Model(&model.Customer{}).
		Where("id = ? AND loyalty_points >= ?", id, points).
		Update("loyalty_points", gorm.Expr("loyalty_points - ?", points))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientPoints
	}
	return nil
}
