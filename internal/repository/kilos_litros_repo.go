package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KilosLitrosRepository interface {
	// Create appends an entry. There is no upsert key here: a route can
	// log several delivery runs on the same day.
	Create(ctx context.Context, k *model.KilosLitros) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.KilosLitros, error)
	ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.KilosLitros, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type kilosLitrosRepo struct{ db *gorm.DB }

func NewKilosLitrosRepository(db *gorm.DB) KilosLitrosRepository { return &kilosLitrosRepo{db: db} }

func (r *kilosLitrosRepo) Create(ctx context.Context, k *model.KilosLitros) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *kilosLitrosRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.KilosLitros, error) {
	var row model.KilosLitros
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	return &row, err
}

func (r *kilosLitrosRepo) ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.KilosLitros, error) {
	var rows []model.KilosLitros
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND fecha BETWEEN ? AND ?", hubID, from, to).
		Order("fecha ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *kilosLitrosRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.KilosLitros{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
