package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

type KilosLitrosService interface {
	Create(ctx context.Context, hubID uuid.UUID, req dto.CrearKilosLitrosRequest) (*dto.KilosLitrosResponse, error)
	List(ctx context.Context, hubID uuid.UUID, year, month int) ([]dto.KilosLitrosResponse, error)
	Delete(ctx context.Context, hubID, id uuid.UUID) error
	Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenKilosLitrosResponse, error)
}

type kilosLitrosService struct {
	kilos repository.KilosLitrosRepository
	rutas repository.RutaRepository
}

func NewKilosLitrosService(kilos repository.KilosLitrosRepository, rutas repository.RutaRepository) KilosLitrosService {
	return &kilosLitrosService{kilos: kilos, rutas: rutas}
}

func (s *kilosLitrosService) Create(ctx context.Context, hubID uuid.UUID, req dto.CrearKilosLitrosRequest) (*dto.KilosLitrosResponse, error) {
	if _, _, _, err := calendar.ParseDate(req.Fecha); err != nil {
		return nil, err
	}
	rutaID, err := uuid.Parse(req.RutaID)
	if err != nil {
		return nil, errors.New("Identificador de ruta inválido")
	}
	ruta, err := s.rutas.FindByID(ctx, rutaID)
	if err != nil || ruta.HubID != hubID {
		return nil, errors.New("Ruta no encontrada")
	}

	row := &model.KilosLitros{
		RutaID:     rutaID,
		HubID:      hubID,
		Fecha:      req.Fecha,
		Repartidor: strings.ToLower(strings.TrimSpace(req.Repartidor)),
		Clientes:   req.Clientes,
		Kilos:      req.Kilos,
		Litros:     req.Litros,
		Bultos:     req.Bultos,
	}
	if err := s.kilos.Create(ctx, row); err != nil {
		return nil, err
	}
	resp := toKilosLitrosResponse(row)
	return &resp, nil
}

func (s *kilosLitrosService) List(ctx context.Context, hubID uuid.UUID, year, month int) ([]dto.KilosLitrosResponse, error) {
	rows, err := s.listMonth(ctx, hubID, year, month)
	if err != nil {
		return nil, err
	}
	out := make([]dto.KilosLitrosResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toKilosLitrosResponse(&rows[i]))
	}
	return out, nil
}

func (s *kilosLitrosService) Delete(ctx context.Context, hubID, id uuid.UUID) error {
	row, err := s.kilos.FindByID(ctx, id)
	if err != nil || row.HubID != hubID {
		return errors.New("Registro no encontrado")
	}
	if err := s.kilos.Delete(ctx, id); err != nil {
		return errors.New("Registro no encontrado")
	}
	return nil
}

func (s *kilosLitrosService) Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenKilosLitrosResponse, error) {
	rutas, err := s.rutas.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	rows, err := s.listMonth(ctx, hubID, year, month)
	if err != nil {
		return nil, err
	}
	return BuildResumenKilosLitros(rutas, rows), nil
}

func (s *kilosLitrosService) listMonth(ctx context.Context, hubID uuid.UUID, year, month int) ([]model.KilosLitros, error) {
	from := calendar.DateString(year, month, 1)
	to := calendar.DateString(year, month, calendar.DaysInMonth(year, month))
	return s.kilos.ListByHubMonth(ctx, hubID, from, to)
}

// BuildResumenKilosLitros computes the month totals plus the per-repartidor
// and per-route breakdowns. Routes with no entries are omitted.
func BuildResumenKilosLitros(rutas []model.Ruta, rows []model.KilosLitros) *dto.ResumenKilosLitrosResponse {
	rutaNames := make(map[uuid.UUID]string, len(rutas))
	for _, r := range rutas {
		rutaNames[r.ID] = r.Name
	}

	resp := &dto.ResumenKilosLitrosResponse{
		ByRepartidor: []dto.ResumenKilosRepartidor{},
		ByRoute:      []dto.ResumenKilosRuta{},
	}
	byRepartidor := make(map[string]*dto.TotalesKilosLitros)
	byRuta := make(map[uuid.UUID]*dto.TotalesKilosLitros)
	for _, row := range rows {
		addTotales(&resp.Totals, row)
		if _, ok := byRepartidor[row.Repartidor]; !ok {
			byRepartidor[row.Repartidor] = &dto.TotalesKilosLitros{}
		}
		addTotales(byRepartidor[row.Repartidor], row)
		if _, ok := byRuta[row.RutaID]; !ok {
			byRuta[row.RutaID] = &dto.TotalesKilosLitros{}
		}
		addTotales(byRuta[row.RutaID], row)
	}

	names := make([]string, 0, len(byRepartidor))
	for name := range byRepartidor {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		resp.ByRepartidor = append(resp.ByRepartidor, dto.ResumenKilosRepartidor{
			Repartidor:         name,
			TotalesKilosLitros: *byRepartidor[name],
		})
	}

	ids := make([]uuid.UUID, 0, len(byRuta))
	for id := range byRuta {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return rutaNames[ids[i]] < rutaNames[ids[j]] })
	for _, id := range ids {
		resp.ByRoute = append(resp.ByRoute, dto.ResumenKilosRuta{
			RutaID:             id.String(),
			RutaName:           rutaNames[id],
			TotalesKilosLitros: *byRuta[id],
		})
	}
	return resp
}

func addTotales(t *dto.TotalesKilosLitros, row model.KilosLitros) {
	t.Clientes += row.Clientes
	t.Kilos = t.Kilos.Add(row.Kilos)
	t.Litros = t.Litros.Add(row.Litros)
	t.Bultos += row.Bultos
}

func toKilosLitrosResponse(k *model.KilosLitros) dto.KilosLitrosResponse {
	return dto.KilosLitrosResponse{
		ID:         k.ID.String(),
		RutaID:     k.RutaID.String(),
		Fecha:      k.Fecha,
		Repartidor: k.Repartidor,
		Clientes:   k.Clientes,
		Kilos:      k.Kilos,
		Litros:     k.Litros,
		Bultos:     k.Bultos,
	}
}
