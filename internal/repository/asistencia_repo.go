package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AsistenciaRepository interface {
	// ListByHubMonth returns all persisted cells of a hub whose fecha falls
	// in [from, to] (canonical YYYY-MM-DD bounds sort lexicographically).
	ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.Asistencia, error)
	// Upsert writes one cell, replacing any previous row for the same
	// (empleado, fecha) key.
	Upsert(ctx context.Context, a *model.Asistencia) error
	// DeleteByKey removes the cell for (empleado, fecha) if present.
	DeleteByKey(ctx context.Context, empleadoID uuid.UUID, fecha string) error
}

type asistenciaRepo struct{ db *gorm.DB }

func NewAsistenciaRepository(db *gorm.DB) AsistenciaRepository { return &asistenciaRepo{db: db} }

func (r *asistenciaRepo) ListByHubMonth(ctx context.Context, hubID uuid.UUID, from, to string) ([]model.Asistencia, error) {
	var rows []model.Asistencia
	err := r.db.WithContext(ctx).
		Where("hub_id = ? AND fecha BETWEEN ? AND ?", hubID, from, to).
		Order("fecha ASC").
		Find(&rows).Error
	return rows, err
}

func (r *asistenciaRepo) Upsert(ctx context.Context, a *model.Asistencia) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "empleado_id"}, {Name: "fecha"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "extra_hours", "diet", "updated_at"}),
	}).Create(a).Error
}

func (r *asistenciaRepo) DeleteByKey(ctx context.Context, empleadoID uuid.UUID, fecha string) error {
	return r.db.WithContext(ctx).
		Where("empleado_id = ? AND fecha = ?", empleadoID, fecha).
		Delete(&model.Asistencia{}).Error
}
