package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Create(ctx context.Context, e *model.Empleado) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Empleado, error)
	// DeleteCascade removes the employee along with their attendance rows.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Create(ctx context.Context, e *model.Empleado) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *empleadoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Empleado, error) {
	var e model.Empleado
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *empleadoRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Empleado, error) {
	var empleados []model.Empleado
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("name ASC").Find(&empleados).Error
	return empleados, err
}

func (r *empleadoRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("empleado_id = ?", id).Delete(&model.Asistencia{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Empleado{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
