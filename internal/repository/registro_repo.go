package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistroRepository interface {
	Create(ctx context.Context, reg *model.Registro) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Registro, error)
	// List filters by hub and/or category; uuid.Nil / "" mean "any".
	List(ctx context.Context, hubID uuid.UUID, category string) ([]model.Registro, error)
	Update(ctx context.Context, reg *model.Registro) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

type registroRepo struct{ db *gorm.DB }

func NewRegistroRepository(db *gorm.DB) RegistroRepository { return &registroRepo{db: db} }

func (r *registroRepo) Create(ctx context.Context, reg *model.Registro) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registroRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Registro, error) {
	var reg model.Registro
	err := r.db.WithContext(ctx).First(&reg, "id = ?", id).Error
	return &reg, err
}

func (r *registroRepo) List(ctx context.Context, hubID uuid.UUID, category string) ([]model.Registro, error) {
	q := r.db.WithContext(ctx).Model(&model.Registro{})
	if hubID != uuid.Nil {
		q = q.Where("hub_id = ?", hubID)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var registros []model.Registro
	err := q.Order("created_at DESC").Find(&registros).Error
	return registros, err
}

func (r *registroRepo) Update(ctx context.Context, reg *model.Registro) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *registroRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Registro{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *registroRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Registro{}).Count(&n).Error
	return n, err
}

func (r *registroRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Category string
		Count    int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Registro{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, rw := range rows {
		out[rw.Category] = rw.Count
	}
	return out, nil
}
