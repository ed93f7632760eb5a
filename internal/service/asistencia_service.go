package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
)

type AsistenciaService interface {
	CreateEmpleado(ctx context.Context, hubID uuid.UUID, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error)
	ListEmpleados(ctx context.Context, hubID uuid.UUID) ([]dto.EmpleadoResponse, error)
	DeleteEmpleado(ctx context.Context, hubID, empleadoID uuid.UUID) error

	// Grid returns the employees of the hub and the persisted attendance
	// cells for the given month.
	Grid(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.GridAsistenciasResponse, error)
	// Guardar persists a batch of grid cells. Cells with all fields empty
	// are deleted instead of stored, keeping the grid sparse.
	Guardar(ctx context.Context, hubID uuid.UUID, req dto.GuardarAsistenciasRequest) error
	Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenAsistenciasResponse, error)
}

type asistenciaService struct {
	empleados   repository.EmpleadoRepository
	asistencias repository.AsistenciaRepository
	hubs        repository.HubRepository
}

func NewAsistenciaService(empleados repository.EmpleadoRepository, asistencias repository.AsistenciaRepository, hubs repository.HubRepository) AsistenciaService {
	return &asistenciaService{empleados: empleados, asistencias: asistencias, hubs: hubs}
}

func (s *asistenciaService) CreateEmpleado(ctx context.Context, hubID uuid.UUID, req dto.CrearEmpleadoRequest) (*dto.EmpleadoResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	emp := &model.Empleado{
		HubID:    hubID,
		Name:     req.Name,
		Position: req.Position,
	}
	if err := s.empleados.Create(ctx, emp); err != nil {
		return nil, err
	}
	resp := toEmpleadoResponse(emp)
	return &resp, nil
}

func (s *asistenciaService) ListEmpleados(ctx context.Context, hubID uuid.UUID) ([]dto.EmpleadoResponse, error) {
	emps, err := s.empleados.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmpleadoResponse, 0, len(emps))
	for i := range emps {
		out = append(out, toEmpleadoResponse(&emps[i]))
	}
	return out, nil
}

func (s *asistenciaService) DeleteEmpleado(ctx context.Context, hubID, empleadoID uuid.UUID) error {
	emp, err := s.empleados.FindByID(ctx, empleadoID)
	if err != nil || emp.HubID != hubID {
		return errors.New("Empleado no encontrado")
	}
	return s.empleados.DeleteCascade(ctx, empleadoID)
}

func (s *asistenciaService) Grid(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.GridAsistenciasResponse, error) {
	emps, err := s.empleados.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	days := calendar.DaysInMonth(year, month)
	from := calendar.DateString(year, month, 1)
	to := calendar.DateString(year, month, days)
	rows, err := s.asistencias.ListByHubMonth(ctx, hubID, from, to)
	if err != nil {
		return nil, err
	}

	resp := &dto.GridAsistenciasResponse{
		Employees:   make([]dto.EmpleadoResponse, 0, len(emps)),
		Attendance:  make(map[string]dto.AsistenciaCell, len(rows)),
		DaysInMonth: days,
	}
	for i := range emps {
		resp.Employees = append(resp.Employees, toEmpleadoResponse(&emps[i]))
	}
	for _, row := range rows {
		key := fmt.Sprintf("%s_%s", row.EmpleadoID, row.Fecha)
		resp.Attendance[key] = dto.AsistenciaCell{
			Status:     row.Status,
			ExtraHours: row.ExtraHours,
			Diet:       row.Diet,
		}
	}
	return resp, nil
}

func (s *asistenciaService) Guardar(ctx context.Context, hubID uuid.UUID, req dto.GuardarAsistenciasRequest) error {
	for _, entry := range req.Entries {
		if !model.ValidStatus(entry.Status) {
			return fmt.Errorf("Estado de asistencia inválido: %q", entry.Status)
		}
		if _, _, _, err := calendar.ParseDate(entry.Fecha); err != nil {
			return err
		}
	}
	for _, entry := range req.Entries {
		empleadoID, err := uuid.Parse(entry.EmpleadoID)
		if err != nil {
			return errors.New("Identificador de empleado inválido")
		}
		cell := model.Asistencia{
			EmpleadoID: empleadoID,
			HubID:      hubID,
			Fecha:      entry.Fecha,
			Status:     entry.Status,
			ExtraHours: entry.ExtraHours,
			Diet:       entry.Diet,
		}
		if cell.Empty() {
			if err := s.asistencias.DeleteByKey(ctx, empleadoID, entry.Fecha); err != nil {
				return err
			}
			continue
		}
		if err := s.asistencias.Upsert(ctx, &cell); err != nil {
			return err
		}
	}
	return nil
}

func (s *asistenciaService) Resumen(ctx context.Context, hubID uuid.UUID, year, month int) (*dto.ResumenAsistenciasResponse, error) {
	emps, err := s.empleados.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	from := calendar.DateString(year, month, 1)
	to := calendar.DateString(year, month, calendar.DaysInMonth(year, month))
	rows, err := s.asistencias.ListByHubMonth(ctx, hubID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.ResumenAsistenciasResponse{Summary: BuildResumenAsistencias(emps, rows)}, nil
}

// BuildResumenAsistencias folds the month's cells into one line per employee.
// Employees with no cells still appear, zeroed.
func BuildResumenAsistencias(empleados []model.Empleado, rows []model.Asistencia) []dto.ResumenEmpleado {
	byEmpleado := make(map[uuid.UUID]*dto.ResumenEmpleado, len(empleados))
	order := make([]uuid.UUID, 0, len(empleados))
	for i := range empleados {
		e := &empleados[i]
		byEmpleado[e.ID] = &dto.ResumenEmpleado{
			EmpleadoID:   e.ID.String(),
			EmpleadoName: e.Name,
		}
		order = append(order, e.ID)
	}

	for _, row := range rows {
		line, ok := byEmpleado[row.EmpleadoID]
		if !ok {
			continue
		}
		switch row.Status {
		case model.StatusWorked:
			line.DaysWorked++
		case model.StatusRest:
			line.DaysRest++
		case model.StatusAbsent:
			line.DaysAbsent++
		case model.StatusSick:
			line.DaysSick++
		case model.StatusOther:
			line.DaysOther++
		}
		line.TotalExtraHours = line.TotalExtraHours.Add(row.ExtraHours)
		line.TotalDiets += row.Diet
	}

	out := make([]dto.ResumenEmpleado, 0, len(order))
	for _, id := range order {
		out = append(out, *byEmpleado[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].EmpleadoName < out[j].EmpleadoName })
	return out
}

func toEmpleadoResponse(e *model.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		ID:       e.ID.String(),
		HubID:    e.HubID.String(),
		Name:     e.Name,
		Position: e.Position,
	}
}
