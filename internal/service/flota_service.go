package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

type FlotaService interface {
	CreateVehiculo(ctx context.Context, hubID uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error)
	ListVehiculos(ctx context.Context, hubID uuid.UUID) ([]dto.VehiculoResponse, error)
	UpdateVehiculo(ctx context.Context, hubID, vehiculoID uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error)
	DeleteVehiculo(ctx context.Context, hubID, vehiculoID uuid.UUID) error

	CreateIncidencia(ctx context.Context, hubID uuid.UUID, req dto.CrearIncidenciaRequest) (*dto.IncidenciaResponse, error)
	ListIncidencias(ctx context.Context, hubID uuid.UUID) ([]dto.IncidenciaResponse, error)
	ListIncidenciasByVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]dto.IncidenciaResponse, error)
	UpdateIncidencia(ctx context.Context, hubID, incidenciaID uuid.UUID, req dto.ActualizarIncidenciaRequest) (*dto.IncidenciaResponse, error)
	DeleteIncidencia(ctx context.Context, hubID, incidenciaID uuid.UUID) error
}

type flotaService struct {
	vehiculos   repository.VehiculoRepository
	incidencias repository.IncidenciaRepository
	hubs        repository.HubRepository
}

func NewFlotaService(vehiculos repository.VehiculoRepository, incidencias repository.IncidenciaRepository, hubs repository.HubRepository) FlotaService {
	return &flotaService{vehiculos: vehiculos, incidencias: incidencias, hubs: hubs}
}

func (s *flotaService) CreateVehiculo(ctx context.Context, hubID uuid.UUID, req dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if !model.ValidVehicleType(req.VehicleType) {
		return nil, errors.New("Tipo de vehículo inválido")
	}
	v := &model.Vehiculo{
		HubID:       hubID,
		Plate:       strings.ToUpper(strings.TrimSpace(req.Plate)),
		VehicleType: req.VehicleType,
	}
	if err := s.vehiculos.Create(ctx, v); err != nil {
		return nil, err
	}
	resp := toVehiculoResponse(v)
	return &resp, nil
}

func (s *flotaService) ListVehiculos(ctx context.Context, hubID uuid.UUID) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.vehiculos.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		out = append(out, toVehiculoResponse(&vehiculos[i]))
	}
	return out, nil
}

func (s *flotaService) UpdateVehiculo(ctx context.Context, hubID, vehiculoID uuid.UUID, req dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	v, err := s.vehiculos.FindByID(ctx, vehiculoID)
	if err != nil || v.HubID != hubID {
		return nil, errors.New("Vehículo no encontrado")
	}
	if req.Plate != nil {
		v.Plate = strings.ToUpper(strings.TrimSpace(*req.Plate))
	}
	if req.VehicleType != nil {
		if !model.ValidVehicleType(*req.VehicleType) {
			return nil, errors.New("Tipo de vehículo inválido")
		}
		v.VehicleType = *req.VehicleType
	}
	if err := s.vehiculos.Update(ctx, v); err != nil {
		return nil, err
	}
	resp := toVehiculoResponse(v)
	return &resp, nil
}

func (s *flotaService) DeleteVehiculo(ctx context.Context, hubID, vehiculoID uuid.UUID) error {
	v, err := s.vehiculos.FindByID(ctx, vehiculoID)
	if err != nil || v.HubID != hubID {
		return errors.New("Vehículo no encontrado")
	}
	return s.vehiculos.DeleteCascade(ctx, vehiculoID)
}

func (s *flotaService) CreateIncidencia(ctx context.Context, hubID uuid.UUID, req dto.CrearIncidenciaRequest) (*dto.IncidenciaResponse, error) {
	vehiculoID, err := uuid.Parse(req.VehiculoID)
	if err != nil {
		return nil, errors.New("Identificador de vehículo inválido")
	}
	v, err := s.vehiculos.FindByID(ctx, vehiculoID)
	if err != nil || v.HubID != hubID {
		return nil, errors.New("Vehículo no encontrado")
	}
	inc := &model.Incidencia{
		VehiculoID:  vehiculoID,
		HubID:       hubID,
		Title:       req.Title,
		Description: req.Description,
		Fecha:       req.Fecha,
		Cost:        req.Cost,
		Km:          req.Km,
	}
	if err := s.incidencias.Create(ctx, inc); err != nil {
		return nil, err
	}
	resp := toIncidenciaResponse(inc)
	return &resp, nil
}

func (s *flotaService) ListIncidencias(ctx context.Context, hubID uuid.UUID) ([]dto.IncidenciaResponse, error) {
	incidencias, err := s.incidencias.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return toIncidenciaResponses(incidencias), nil
}

func (s *flotaService) ListIncidenciasByVehiculo(ctx context.Context, vehiculoID uuid.UUID) ([]dto.IncidenciaResponse, error) {
	incidencias, err := s.incidencias.ListByVehiculo(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	return toIncidenciaResponses(incidencias), nil
}

func (s *flotaService) UpdateIncidencia(ctx context.Context, hubID, incidenciaID uuid.UUID, req dto.ActualizarIncidenciaRequest) (*dto.IncidenciaResponse, error) {
	inc, err := s.incidencias.FindByID(ctx, incidenciaID)
	if err != nil || inc.HubID != hubID {
		return nil, errors.New("Incidencia no encontrada")
	}
	if req.Title != nil {
		inc.Title = *req.Title
	}
	if req.Description != nil {
		inc.Description = *req.Description
	}
	if req.Fecha != nil {
		inc.Fecha = *req.Fecha
	}
	if req.Cost != nil {
		inc.Cost = *req.Cost
	}
	if req.Km != nil {
		inc.Km = *req.Km
	}
	if err := s.incidencias.Update(ctx, inc); err != nil {
		return nil, err
	}
	resp := toIncidenciaResponse(inc)
	return &resp, nil
}

func (s *flotaService) DeleteIncidencia(ctx context.Context, hubID, incidenciaID uuid.UUID) error {
	inc, err := s.incidencias.FindByID(ctx, incidenciaID)
	if err != nil || inc.HubID != hubID {
		return errors.New("Incidencia no encontrada")
	}
	return s.incidencias.Delete(ctx, incidenciaID)
}

func toVehiculoResponse(v *model.Vehiculo) dto.VehiculoResponse {
	return dto.VehiculoResponse{
		ID:          v.ID.String(),
		HubID:       v.HubID.String(),
		Plate:       v.Plate,
		VehicleType: v.VehicleType,
	}
}

func toIncidenciaResponses(incidencias []model.Incidencia) []dto.IncidenciaResponse {
	out := make([]dto.IncidenciaResponse, 0, len(incidencias))
	for i := range incidencias {
		out = append(out, toIncidenciaResponse(&incidencias[i]))
	}
	return out
}

func toIncidenciaResponse(i *model.Incidencia) dto.IncidenciaResponse {
	return dto.IncidenciaResponse{
		ID:          i.ID.String(),
		VehiculoID:  i.VehiculoID.String(),
		HubID:       i.HubID.String(),
		Title:       i.Title,
		Description: i.Description,
		Fecha:       i.Fecha,
		Cost:        i.Cost,
		Km:          i.Km,
	}
}
