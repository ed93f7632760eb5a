package service

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

type RestriccionService interface {
	Create(ctx context.Context, hubID uuid.UUID, req dto.CrearRestriccionRequest) (*dto.RestriccionResponse, error)
	List(ctx context.Context, hubID uuid.UUID) ([]dto.RestriccionResponse, error)
	Update(ctx context.Context, hubID, restriccionID uuid.UUID, req dto.ActualizarRestriccionRequest) (*dto.RestriccionResponse, error)
	Delete(ctx context.Context, hubID, restriccionID uuid.UUID) error
}

type restriccionService struct {
	restricciones repository.RestriccionRepository
	hubs          repository.HubRepository
}

func NewRestriccionService(restricciones repository.RestriccionRepository, hubs repository.HubRepository) RestriccionService {
	return &restriccionService{restricciones: restricciones, hubs: hubs}
}

func (s *restriccionService) Create(ctx context.Context, hubID uuid.UUID, req dto.CrearRestriccionRequest) (*dto.RestriccionResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if !model.ValidRestriccionDias(req.Dias) {
		return nil, errors.New("Rango de días inválido")
	}
	if !model.ValidRestriccionAplicaA(req.AplicaA) {
		return nil, errors.New("Ámbito de aplicación inválido")
	}
	rest := &model.RestriccionHoraria{
		HubID:   hubID,
		Zona:    req.Zona,
		Horario: req.Horario,
		Dias:    req.Dias,
		AplicaA: req.AplicaA,
		Notas:   req.Notas,
	}
	if err := s.restricciones.Create(ctx, rest); err != nil {
		return nil, err
	}
	resp := toRestriccionResponse(rest)
	return &resp, nil
}

func (s *restriccionService) List(ctx context.Context, hubID uuid.UUID) ([]dto.RestriccionResponse, error) {
	restricciones, err := s.restricciones.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RestriccionResponse, 0, len(restricciones))
	for i := range restricciones {
		out = append(out, toRestriccionResponse(&restricciones[i]))
	}
	return out, nil
}

func (s *restriccionService) Update(ctx context.Context, hubID, restriccionID uuid.UUID, req dto.ActualizarRestriccionRequest) (*dto.RestriccionResponse, error) {
	rest, err := s.restricciones.FindByID(ctx, restriccionID)
	if err != nil || rest.HubID != hubID {
		return nil, errors.New("Restricción no encontrada")
	}
	if req.Zona != nil {
		rest.Zona = *req.Zona
	}
	if req.Horario != nil {
		rest.Horario = *req.Horario
	}
	if req.Dias != nil {
		if !model.ValidRestriccionDias(*req.Dias) {
			return nil, errors.New("Rango de días inválido")
		}
		rest.Dias = *req.Dias
	}
	if req.AplicaA != nil {
		if !model.ValidRestriccionAplicaA(*req.AplicaA) {
			return nil, errors.New("Ámbito de aplicación inválido")
		}
		rest.AplicaA = *req.AplicaA
	}
	if req.Notas != nil {
		rest.Notas = *req.Notas
	}
	if err := s.restricciones.Update(ctx, rest); err != nil {
		return nil, err
	}
	resp := toRestriccionResponse(rest)
	return &resp, nil
}

func (s *restriccionService) Delete(ctx context.Context, hubID, restriccionID uuid.UUID) error {
	rest, err := s.restricciones.FindByID(ctx, restriccionID)
	if err != nil || rest.HubID != hubID {
		return errors.New("Restricción no encontrada")
	}
	return s.restricciones.Delete(ctx, restriccionID)
}

func toRestriccionResponse(r *model.RestriccionHoraria) dto.RestriccionResponse {
	return dto.RestriccionResponse{
		ID:      r.ID.String(),
		HubID:   r.HubID.String(),
		Zona:    r.Zona,
		Horario: r.Horario,
		Dias:    r.Dias,
		AplicaA: r.AplicaA,
		Notas:   r.Notas,
	}
}
