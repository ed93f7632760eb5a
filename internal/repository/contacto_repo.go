package repository

import (
	"context"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactoRepository interface {
	Create(ctx context.Context, c *model.Contacto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contacto, error)
	ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Contacto, error)
	Update(ctx context.Context, c *model.Contacto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type contactoRepo struct{ db *gorm.DB }

func NewContactoRepository(db *gorm.DB) ContactoRepository { return &contactoRepo{db: db} }

func (r *contactoRepo) Create(ctx context.Context, c *model.Contacto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Contacto, error) {
	var c model.Contacto
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *contactoRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]model.Contacto, error) {
	var contactos []model.Contacto
	err := r.db.WithContext(ctx).Where("hub_id = ?", hubID).Order("name ASC").Find(&contactos).Error
	return contactos, err
}

func (r *contactoRepo) Update(ctx context.Context, c *model.Contacto) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contactoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&model.Contacto{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
