package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RestriccionRepository interface {
	Create(ctx context.Context, r *model.RestriccionHoraria) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RestriccionHoraria, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.RestriccionHoraria, error)
	Update(ctx context.Context, r *model.RestriccionHoraria) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type restriccionRepo struct{ db *gorm.DB }

func NewRestriccionRepository(db *gorm.DB) RestriccionRepository { return &restriccionRepo{db: db} }

func (r *restriccionRepo) Create(ctx context.Context, rest *model.RestriccionHoraria) error {
	return r.db.WithContext(ctx).Create(rest).Error
}

func (r *restriccionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RestriccionHoraria, error) {
	var rest model.RestriccionHoraria
	err := r.db.WithContext(ctx).First(&rest, "id = ?", id).Error
	return &rest, err
}

func (r *restriccionRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.RestriccionHoraria, error) {
	var restricciones []model.RestriccionHoraria
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("zona ASC").Find(&restricciones).Error
	return restricciones, err
}

func (r *restriccionRepo) Update(ctx context.Context, rest *model.RestriccionHoraria) error {
	return r.db.WithContext(ctx).Save(rest).Error
}

func (r *restriccionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.RestriccionHoraria{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
