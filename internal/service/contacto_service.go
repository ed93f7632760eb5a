package service

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

type ContactoService interface {
	Create(ctx context.Context, hubID uuid.UUID, req dto.CrearContactoRequest) (*dto.ContactoResponse, error)
	List(ctx context.Context, hubID uuid.UUID) ([]dto.ContactoResponse, error)
	Update(ctx context.Context, hubID, contactoID uuid.UUID, req dto.ActualizarContactoRequest) (*dto.ContactoResponse, error)
	Delete(ctx context.Context, hubID, contactoID uuid.UUID) error
}

type contactoService struct {
	contactos repository.ContactoRepository
	hubs      repository.HubRepository
}

func NewContactoService(contactos repository.ContactoRepository, hubs repository.HubRepository) ContactoService {
	return &contactoService{contactos: contactos, hubs: hubs}
}

func (s *contactoService) Create(ctx context.Context, hubID uuid.UUID, req dto.CrearContactoRequest) (*dto.ContactoResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	c := &model.Contacto{
		HubID:    hubID,
		Name:     req.Name,
		Position: req.Position,
		Phone:    req.Phone,
	}
	if err := s.contactos.Create(ctx, c); err != nil {
		return nil, err
	}
	resp := toContactoResponse(c)
	return &resp, nil
}

func (s *contactoService) List(ctx context.Context, hubID uuid.UUID) ([]dto.ContactoResponse, error) {
	contactos, err := s.contactos.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactoResponse, 0, len(contactos))
	for i := range contactos {
		out = append(out, toContactoResponse(&contactos[i]))
	}
	return out, nil
}

func (s *contactoService) Update(ctx context.Context, hubID, contactoID uuid.UUID, req dto.ActualizarContactoRequest) (*dto.ContactoResponse, error) {
	c, err := s.contactos.FindByID(ctx, contactoID)
	if err != nil || c.HubID != hubID {
		return nil, errors.New("Contacto no encontrado")
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Position != nil {
		c.Position = *req.Position
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if err := s.contactos.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := toContactoResponse(c)
	return &resp, nil
}

func (s *contactoService) Delete(ctx context.Context, hubID, contactoID uuid.UUID) error {
	c, err := s.contactos.FindByID(ctx, contactoID)
	if err != nil || c.HubID != hubID {
		return errors.New("Contacto no encontrado")
	}
	return s.contactos.Delete(ctx, contactoID)
}

func toContactoResponse(c *model.Contacto) dto.ContactoResponse {
	return dto.ContactoResponse{
		ID:       c.ID.String(),
		HubID:    c.HubID.String(),
		Name:     c.Name,
		Position: c.Position,
		Phone:    c.Phone,
	}
}
