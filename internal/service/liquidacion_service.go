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
	"github.com/shopspring/decimal"
)

// Repartidor balance labels shown in the monthly summary.
const (
	EstadoDebeDinero = "debe dinero"
	EstadoAFavor     = "a favor"
	EstadoCuadrado   = "cuadrado"
)

type LiquidacionService interface {
	CreateRuta(ctx context.Context, hubID uuid.UUID, req dto.CrearRutaRequest) (*dto.RutaResponse, error)
	ListRutas(ctx context.Context, hubID uuid.UUID) ([]dto.RutaResponse, error)
	DeleteRuta(ctx context.Context, hubID, rutaID uuid.UUID) error

	ListByRuta(ctx context.Context, rutaID uuid.UUID, year, month int) ([]dto.LiquidacionResponse, error)
	// Guardar upserts a batch of daily entries keyed by (ruta, fecha).
	Guardar(ctx context.Context, hubID uuid.UUID, req dto.GuardarLiquidacionesRequest) error
	Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenLiquidacionesResponse, error)
}

type liquidacionService struct {
	rutas         repository.RutaRepository
	liquidaciones repository.LiquidacionRepository
	hubs          repository.HubRepository
}

func NewLiquidacionService(rutas repository.RutaRepository, liquidaciones repository.LiquidacionRepository, hubs repository.HubRepository) LiquidacionService {
	return &liquidacionService{rutas: rutas, liquidaciones: liquidaciones, hubs: hubs}
}

func (s *liquidacionService) CreateRuta(ctx context.Context, hubID uuid.UUID, req dto.CrearRutaRequest) (*dto.RutaResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	ruta := &model.Ruta{HubID: hubID, Name: req.Name}
	if err := s.rutas.Create(ctx, ruta); err != nil {
		return nil, err
	}
	resp := toRutaResponse(ruta)
	return &resp, nil
}

func (s *liquidacionService) ListRutas(ctx context.Context, hubID uuid.UUID) ([]dto.RutaResponse, error) {
	rutas, err := s.rutas.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RutaResponse, 0, len(rutas))
	for i := range rutas {
		out = append(out, toRutaResponse(&rutas[i]))
	}
	return out, nil
}

func (s *liquidacionService) DeleteRuta(ctx context.Context, hubID, rutaID uuid.UUID) error {
	ruta, err := s.rutas.FindByID(ctx, rutaID)
	if err != nil || ruta.HubID != hubID {
		return errors.New("Ruta no encontrada")
	}
	return s.rutas.DeleteCascade(ctx, rutaID)
}

func (s *liquidacionService) ListByRuta(ctx context.Context, rutaID uuid.UUID, year, month int) ([]dto.LiquidacionResponse, error) {
	from := calendar.DateString(year, month, 1)
	to := calendar.DateString(year, month, calendar.DaysInMonth(year, month))
	rows, err := s.liquidaciones.ListByRutaMonth(ctx, rutaID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LiquidacionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toLiquidacionResponse(&rows[i]))
	}
	return out, nil
}

func (s *liquidacionService) Guardar(ctx context.Context, hubID uuid.UUID, req dto.GuardarLiquidacionesRequest) error {
	for _, entry := range req.Entries {
		if _, _, _, err := calendar.ParseDate(entry.Fecha); err != nil {
			return err
		}
	}
	for _, entry := range req.Entries {
		rutaID, err := uuid.Parse(entry.RutaID)
		if err != nil {
			return errors.New("Identificador de ruta inválido")
		}
		row := model.Liquidacion{
			RutaID:     rutaID,
			HubID:      hubID,
			Fecha:      entry.Fecha,
			Repartidor: strings.ToLower(strings.TrimSpace(entry.Repartidor)),
			Metalico:   entry.Metalico,
			Ingreso:    entry.Ingreso,
			Comentario: entry.Comentario,
		}
		if err := s.liquidaciones.Upsert(ctx, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *liquidacionService) Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenLiquidacionesResponse, error) {
	rutas, err := s.rutas.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	from := calendar.DateString(year, month, 1)
	to := calendar.DateString(year, month, calendar.DaysInMonth(year, month))
	rows, err := s.liquidaciones.ListByHubMonth(ctx, hubID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildResumenLiquidaciones(rutas, rows), nil
}

// BuildResumenLiquidaciones folds a month of entries into the per-route and
// per-repartidor views. A route's descuadre is the sum of its daily
// diferencias; every non-zero daily diferencia is listed individually under
// descuadres_detectados, ordered by fecha.
func BuildResumenLiquidaciones(rutas []model.Ruta, rows []model.Liquidacion) *dto.ResumenLiquidacionesResponse {
	byRuta := make(map[uuid.UUID]*dto.ResumenRuta, len(rutas))
	order := make([]uuid.UUID, 0, len(rutas))
	for i := range rutas {
		r := &rutas[i]
		byRuta[r.ID] = &dto.ResumenRuta{
			RutaID:               r.ID.String(),
			RutaName:             r.Name,
			DescuadresDetectados: []dto.DescuadreDetectado{},
		}
		order = append(order, r.ID)
	}

	repartidorTotals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		diff := row.Diferencia()
		if line, ok := byRuta[row.RutaID]; ok {
			line.TotalMetalico = line.TotalMetalico.Add(row.Metalico)
			line.TotalIngreso = line.TotalIngreso.Add(row.Ingreso)
			line.Descuadre = line.Descuadre.Add(diff)
			if !diff.IsZero() {
				line.DescuadresDetectados = append(line.DescuadresDetectados, dto.DescuadreDetectado{
					Fecha:      row.Fecha,
					Repartidor: row.Repartidor,
					Diferencia: diff,
				})
			}
		}
		if row.Repartidor != "" {
			repartidorTotals[row.Repartidor] = repartidorTotals[row.Repartidor].Add(diff)
		}
	}

	resp := &dto.ResumenLiquidacionesResponse{
		ByRoute:      make([]dto.ResumenRuta, 0, len(order)),
		ByRepartidor: make([]dto.ResumenRepartidor, 0, len(repartidorTotals)),
	}
	for _, id := range order {
		line := byRuta[id]
		sort.SliceStable(line.DescuadresDetectados, func(i, j int) bool {
			return line.DescuadresDetectados[i].Fecha < line.DescuadresDetectados[j].Fecha
		})
		resp.ByRoute = append(resp.ByRoute, *line)
	}

	names := make([]string, 0, len(repartidorTotals))
	for name := range repartidorTotals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		total := repartidorTotals[name]
		resp.ByRepartidor = append(resp.ByRepartidor, dto.ResumenRepartidor{
			Repartidor: name,
			Total:      total,
			Estado:     estadoRepartidor(total),
		})
	}
	return resp
}

func estadoRepartidor(total decimal.Decimal) string {
	switch total.Sign() {
	case 1:
		return EstadoDebeDinero
	case -1:
		return EstadoAFavor
	}
	return EstadoCuadrado
}

func toRutaResponse(r *model.Ruta) dto.RutaResponse {
	return dto.RutaResponse{ID: r.ID.String(), HubID: r.HubID.String(), Name: r.Name}
}

func toLiquidacionResponse(l *model.Liquidacion) dto.LiquidacionResponse {
	return dto.LiquidacionResponse{
		ID:         l.ID.String(),
		RutaID:     l.RutaID.String(),
		Fecha:      l.Fecha,
		Repartidor: l.Repartidor,
		Metalico:   l.Metalico,
		Ingreso:    l.Ingreso,
		Diferencia: l.Diferencia(),
		Comentario: l.Comentario,
	}
}
