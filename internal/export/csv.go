package export

import (
	"strconv"
	"strings"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
)

// KilosLitrosCSV renders the month's delivery-volume entries as plain
// comma-joined lines, matching the layout the frontend download always had.
// Fields are not quoted; route and repartidor names containing commas will
// shift columns, a limitation carried over intentionally.
func KilosLitrosCSV(entries []dto.KilosLitrosResponse, rutaNames map[string]string) string {
	var b strings.Builder
	b.WriteString("Fecha,Ruta,Repartidor,Clientes,Kilos,Litros,Bultos\n")
	for _, e := range entries {
		fields := []string{
			e.Fecha,
			rutaNames[e.RutaID],
			e.Repartidor,
			strconv.Itoa(e.Clientes),
			e.Kilos.String(),
			e.Litros.String(),
			strconv.Itoa(e.Bultos),
		}
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}
	return b.String()
}
