package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RutaRepository interface {
	Create(ctx context.Context, ruta *model.Ruta) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Ruta, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Ruta, error)
	// DeleteCascade removes the route with its liquidation and kilos/litros
	// entries.
	DeleteCascade(ctx context.Context, id uuid.UUID) error
}

type rutaRepo struct{ db *gorm.DB }

func NewRutaRepository(db *gorm.DB) RutaRepository { return &rutaRepo{db: db} }

func (r *rutaRepo) Create(ctx context.Context, ruta *model.Ruta) error {
	return r.db.WithContext(ctx).Create(ruta).Error
}

func (r *rutaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Ruta, error) {
	var ruta model.Ruta
	err := r.db.WithContext(ctx).First(&ruta, "id = ?", id).Error
	return &ruta, err
}

func (r *rutaRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Ruta, error) {
	var rutas []model.Ruta
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("name ASC").Find(&rutas).Error
	return rutas, err
}

func (r *rutaRepo) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ruta_id = ?", id).Delete(&model.Liquidacion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ruta_id = ?", id).Delete(&model.KilosLitros{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Ruta{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
