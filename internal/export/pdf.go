package export

import (
	"bytes"
	"fmt"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/calendar"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"

	"github.com/go-pdf/fpdf"
)

// LiquidacionesPDF renders the monthly reconciliation report: one block per
// route with its totals and detected discrepancies, then the per-repartidor
// balance table.
func LiquidacionesPDF(hubName string, year, month int, resumen *dto.ResumenLiquidacionesResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Liquidaciones", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("%s - %s %d", hubName, calendar.Months[month], year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col1 := contentW * 0.40
	col2 := contentW * 0.20
	col3 := contentW * 0.20
	col4 := contentW * 0.20

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Ruta", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Metálico", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 6, "Ingreso", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Descuadre", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, ruta := range resumen.ByRoute {
		pdf.CellFormat(col1, 6, ruta.RutaName, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, ruta.TotalMetalico.StringFixed(2)+" EUR", "", 0, "R", false, 0, "")
		pdf.CellFormat(col3, 6, ruta.TotalIngreso.StringFixed(2)+" EUR", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, ruta.Descuadre.StringFixed(2)+" EUR", "", 1, "R", false, 0, "")

		if len(ruta.DescuadresDetectados) > 0 {
			pdf.SetFont("Helvetica", "I", 8)
			for _, d := range ruta.DescuadresDetectados {
				line := fmt.Sprintf("    %s  %s  %s EUR", d.Fecha, d.Repartidor, d.Diferencia.StringFixed(2))
				pdf.CellFormat(contentW, 5, line, "", 1, "L", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", 9)
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Balance por repartidor", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Repartidor", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2+col3, 6, "Total", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Estado", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, rep := range resumen.ByRepartidor {
		pdf.CellFormat(col1, 6, rep.Repartidor, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2+col3, 6, rep.Total.StringFixed(2)+" EUR", "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, rep.Estado, "", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
