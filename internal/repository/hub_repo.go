package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HubRepository interface {
	Create(ctx context.Context, h *model.Hub) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hub, error)
	FindByName(ctx context.Context, name string) (*model.Hub, error)
	List(ctx context.Context) ([]model.Hub, error)
	Update(ctx context.Context, h *model.Hub) error
	// DeleteCascade removes the hub and every child row referencing it,
	// inside a single transaction.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type hubRepo struct{ db *gorm.DB }

func NewHubRepository(db *gorm.DB) HubRepository { return &hubRepo{db: db} }

func (r *hubRepo) Create(ctx context.Context, h *model.Hub) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *hubRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Hub, error) {
	var h model.Hub
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

func (r *hubRepo) FindByName(ctx context.Context, name string) (*model.Hub, error) {
	var h model.Hub
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&h).Error
	return &h, err
}

func (r *hubRepo) List(ctx context.Context) ([]model.Hub, error) {
	var hubs []model.Hub
	err := r.db.WithContext(ctx).Order("name ASC").Find(&hubs).Error
	return hubs, err
}

func (r *hubRepo) Update(ctx context.Context, h *model.Hub) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *hubRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.Asistencia{}, &model.Empleado{},
			&model.Liquidacion{}, &model.KilosLitros{}, &model.Ruta{},
			&model.Incidencia{}, &model.Vehiculo{},
			&model.Compra{}, &model.Contacto{},
			&model.DiaFestivo{}, &model.RestriccionHoraria{}, &model.Registro{},
		} {
			if err := tx.Where("hub_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		res := tx.Delete(&model.Hub{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *hubRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Hub{}).Count(&n).Error
	return n, err
}
