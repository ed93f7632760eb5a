package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LiquidacionRepository interface {
	ListByRutaMonth(ctx context.Context, rutaID uuid.UUID, from, to string) ([]model.Liquidacion, error)
	ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.Liquidacion, error)
	// Upsert writes one entry, replacing any previous row for the same
	// (ruta, fecha) key.
	Upsert(ctx context.Context, l *model.Liquidacion) error
}

type liquidacionRepo struct{ db *gorm.DB }

func NewLiquidacionRepository(db *gorm.DB) LiquidacionRepository { return &liquidacionRepo{db: db} }

func (r *liquidacionRepo) ListByRutaMonth(ctx context.Context, rutaID uuid.UUID, from, to string) ([]model.Liquidacion, error) {
	var rows []model.Liquidacion
	err := r.db.WithContext(ctx).
		Where("ruta_id = ? AND fecha BETWEEN ? AND ?", rutaID, from, to).
		Order("fecha ASC").
		Find(&rows).Error
	return rows, err
}

func (r *liquidacionRepo) ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.Liquidacion, error) {
	var rows []model.Liquidacion
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND fecha BETWEEN ? AND ?", hubID, from, to).
		Order("fecha ASC").
		Find(&rows).Error
	return rows, err
}

func (r *liquidacionRepo) Upsert(ctx context.Context, l *model.Liquidacion) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ruta_id"}, {Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"repartidor", "metalico", "ingreso", "comentario", "updated_at"}),
	}).Create(l).Error
}
