package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Vehiculo, error)
	Update(ctx context.Context, v *model.Vehiculo) error
	// DeleteCascade removes the vehicle and its incidents.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehiculoRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("plate ASC").Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) Update(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehiculo_id = ?", id).Delete(&model.Incidencia{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Vehiculo{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

type IncidenciaRepository interface {
	Create(ctx context.Context, i *model.Incidencia) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Incidencia, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Incidencia, error)
	ListByVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]model.Incidencia, error)
	Update(ctx context.Context, i *model.Incidencia) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type incidenciaRepo struct{ db *gorm.DB }

func NewIncidenciaRepository(db *gorm.DB) IncidenciaRepository { return &incidenciaRepo{db: db} }

func (r *incidenciaRepo) Create(ctx context.Context, i *model.Incidencia) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *incidenciaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Incidencia, error) {
	var i model.Incidencia
	err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error
	return &i, err
}

func (r *incidenciaRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Incidencia, error) {
	var incidencias []model.Incidencia
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("created_at DESC").Find(&incidencias).Error
	return incidencias, err
}

func (r *incidenciaRepo) ListByVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]model.Incidencia, error) {
	var incidencias []model.Incidencia
	err := r.db.WithContext(ctx).Where("vehiculo_id = ?", vehiculoID).Order("created_at DESC").Find(&incidencias).Error
	return incidencias, err
}

func (r *incidenciaRepo) Update(ctx context.Context, i *model.Incidencia) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *incidenciaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Incidencia{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
