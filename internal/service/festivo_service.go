package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

// presetHoliday is a fixed-date national holiday, seeded for every hub and
// year on first access.
type presetHoliday struct {
	Month int
	Day   int
	Name  string
}

var presetHolidays = []presetHoliday{
	{1, 1, "Año Nuevo"},
	{1, 6, "Epifanía del Señor"},
	{5, 1, "Fiesta del Trabajo"},
	{8, 15, "Asunción de la Virgen"},
	{10, 12, "Fiesta Nacional de España"},
	{11, 1, "Todos los Santos"},
	{12, 6, "Día de la Constitución"},
	{12, 8, "Inmaculada Concepción"},
	{12, 25, "Natividad del Señor"},
}

// ErrFestivoPreset marks deletion attempts against the seeded national set.
var ErrFestivoPreset = errors.New("Los festivos nacionales preestablecidos no se pueden eliminar")

type FestivoService interface {
	// ListYear seeds the preset national calendar for the hub/year if
	// missing, then returns every holiday of that year.
	ListYear(ctx context.Context, hubID uuid.UUID, year int) ([]dto.FestivoResponse, error)
	Create(ctx context.Context, hubID uuid.UUID, req dto.CrearFestivoRequest) (*dto.FestivoResponse, error)
	Delete(ctx context.Context, hubID, festivoID uuid.UUID) error
}

type festivoService struct {
	festivos repository.FestivoRepository
	hubs     repository.HubRepository
}

func NewFestivoService(festivos repository.FestivoRepository, hubs repository.HubRepository) FestivoService {
	return &festivoService{festivos: festivos, hubs: hubs}
}

func (s *festivoService) ListYear(ctx context.Context, hubID uuid.UUID, year int) ([]dto.FestivoResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if err := s.seedPresets(ctx, hubID, year); err != nil {
		return nil, err
	}
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)
	festivos, err := s.festivos.ListByHubYear(ctx, hubID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FestivoResponse, 0, len(festivos))
	for i := range festivos {
		out = append(out, toFestivoResponse(&festivos[i]))
	}
	return out, nil
}

func (s *festivoService) Create(ctx context.Context, hubID uuid.UUID, req dto.CrearFestivoRequest) (*dto.FestivoResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if _, _, _, err := calendar.ParseDate(req.Fecha); err != nil {
		return nil, err
	}
	if !model.ValidHolidayType(req.Type) {
		return nil, errors.New("Tipo de festivo inválido")
	}
	f := &model.DiaFestivo{
		HubID:    hubID,
		Fecha:    req.Fecha,
		Name:     req.Name,
		Type:     req.Type,
		IsPreset: false,
	}
	if err := s.festivos.Create(ctx, f); err != nil {
		return nil, err
	}
	resp := toFestivoResponse(f)
	return &resp, nil
}

func (s *festivoService) Delete(ctx context.Context, hubID, festivoID uuid.UUID) error {
	f, err := s.festivos.FindByID(ctx, festivoID)
	if err != nil || f.HubID != hubID {
		return errors.New("Festivo no encontrado")
	}
	if f.IsPreset {
		return ErrFestivoPreset
	}
	return s.festivos.Delete(ctx, festivoID)
}

// seedPresets is idempotent per (hub, year, name).
func (s *festivoService) seedPresets(ctx context.Context, hubID uuid.UUID, year int) error {
	for _, p := range presetHolidays {
		fecha := calendar.DateString(year, p.Month, p.Day)
		exists, err := s.festivos.ExistsByKey(ctx, hubID, fecha, p.Name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		f := &model.DiaFestivo{
			HubID:    hubID,
			Fecha:    fecha,
			Name:     p.Name,
			Type:     model.HolidayNacional,
			IsPreset: true,
		}
		if err := s.festivos.Create(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func toFestivoResponse(f *model.DiaFestivo) dto.FestivoResponse {
	return dto.FestivoResponse{
		ID:       f.ID.String(),
		HubID:    f.HubID.String(),
		Fecha:    f.Fecha,
		Name:     f.Name,
		Type:     f.Type,
		IsPreset: f.IsPreset,
	}
}
