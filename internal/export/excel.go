package export

import (
	"fmt"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"

	"github.com/xuri/excelize/v2"
)

const (
	sheetAsistencia = "Asistencia"
	sheetResumen    = "Resumen"
)

// AsistenciasXLSX builds the monthly attendance workbook: the "Asistencia"
// sheet holds the employee × day grid as edited on screen, the "Resumen"
// sheet the per-employee totals. The caller streams the file to the client.
func AsistenciasXLSX(year, month int, grid *dto.GridAsistenciasResponse, resumen []dto.ResumenEmpleado) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", sheetAsistencia); err != nil {
		return nil, err
	}
	if err := writeGridSheet(f, year, month, grid); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetResumen); err != nil {
		return nil, err
	}
	if err := writeResumenSheet(f, resumen); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeGridSheet(f *excelize.File, year, month int, grid *dto.GridAsistenciasResponse) error {
	title := fmt.Sprintf("Asistencias %s %d", calendar.Months[month], year)
	if err := f.SetCellValue(sheetAsistencia, "A1", title); err != nil {
		return err
	}

	// Header row: employee name then one column per day.
	if err := f.SetCellValue(sheetAsistencia, "A2", "Empleado"); err != nil {
		return err
	}
	for day := 1; day <= grid.DaysInMonth; day++ {
		cell, err := excelize.CoordinatesToCellName(day+1, 2)
		if err != nil {
			return err
		}
		label := fmt.Sprintf("%d %s", day, calendar.DayName(year, month, day))
		if err := f.SetCellValue(sheetAsistencia, cell, label); err != nil {
			return err
		}
	}

	for i, emp := range grid.Employees {
		row := i + 3
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetAsistencia, cell, emp.Name); err != nil {
			return err
		}
		for day := 1; day <= grid.DaysInMonth; day++ {
			key := fmt.Sprintf("%s_%s", emp.ID, calendar.DateString(year, month, day))
			entry, ok := grid.Attendance[key]
			if !ok {
				continue
			}
			value := entry.Status
			if !entry.ExtraHours.IsZero() {
				value += fmt.Sprintf(" +%sh", entry.ExtraHours.String())
			}
			if entry.Diet > 0 {
				value += fmt.Sprintf(" %dD", entry.Diet)
			}
			cell, err := excelize.CoordinatesToCellName(day+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetAsistencia, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeResumenSheet(f *excelize.File, resumen []dto.ResumenEmpleado) error {
	headers := []string{"Empleado", "Trabajados", "Descansos", "Inasistencias", "Enfermedad", "Otros", "Horas extra", "Dietas"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetResumen, cell, h); err != nil {
			return err
		}
	}
	for i, line := range resumen {
		row := i + 2
		values := []interface{}{
			line.EmpleadoName,
			line.DaysWorked,
			line.DaysRest,
			line.DaysAbsent,
			line.DaysSick,
			line.DaysOther,
			line.TotalExtraHours.String(),
			line.TotalDiets,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetResumen, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}
