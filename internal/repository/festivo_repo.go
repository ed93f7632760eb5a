package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FestivoRepository interface {
	Create(ctx context.Context, f *model.DiaFestivo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.DiaFestivo, error)
	// ListByHubYear returns holidays whose fecha falls inside the year.
	ListByHubYear(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.DiaFestivo, error)
	ExistsByKey(ctx context.Context, hubID uuid.UUID, fecha, name string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type festivoRepo struct{ db *gorm.DB }

func NewFestivoRepository(db *gorm.DB) FestivoRepository { return &festivoRepo{db: db} }

func (r *festivoRepo) Create(ctx context.Context, f *model.DiaFestivo) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *festivoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.DiaFestivo, error) {
	var f model.DiaFestivo
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *festivoRepo) ListByHubYear(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.DiaFestivo, error) {
	var festivos []model.DiaFestivo
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND fecha BETWEEN ? AND ?", hubID, from, to).
		Order("fecha ASC").
		Find(&festivos).Error
	return festivos, err
}

func (r *festivoRepo) ExistsByKey(ctx context.Context, hubID uuid.UUID, fecha, name string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.DiaFestivo{}).
		Where("hub_id = ? AND fecha = ? AND name = ?", hubID, fecha, name).
		Count(&n).Error
	return n > 0, err
}

func (r *festivoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.DiaFestivo{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
