package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompraRepository interface {
	Create(ctx context.Context, c *model.Compra) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Compra, error)
	Update(ctx context.Context, c *model.Compra) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) Create(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *compraRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *compraRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("created_at DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) Update(ctx context.Context, c *model.Compra) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *compraRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Compra{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
