package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLiquidacionFixture() (service.LiquidacionService, *memHubRepo, *memRutaRepo, *memLiquidacionRepo) {
	rutas := newMemRutaRepo()
	liquidaciones := newMemLiquidacionRepo()
	hubs := newMemHubRepo()
	svc := service.NewLiquidacionService(rutas, liquidaciones, hubs)
	return svc, hubs, rutas, liquidaciones
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDiferenciaIsMetalicoMinusIngreso(t *testing.T) {
	l := model.Liquidacion{Metalico: dec("150"), Ingreso: dec("140")}
	assert.True(t, l.Diferencia().Equal(dec("10")))

	l = model.Liquidacion{Metalico: dec("100"), Ingreso: dec("120.50")}
	assert.True(t, l.Diferencia().Equal(dec("-20.50")))
}

func TestGuardarUpsertsPorRutaFecha(t *testing.T) {
	svc, hubs, rutas, rows := newLiquidacionFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cáceres")
	rutaID := rutas.addRuta(hubID, "Ruta 1")

	entry := dto.LiquidacionEntry{
		RutaID:     rutaID.String(),
		Fecha:      "2025-04-07",
		Repartidor: "  MANUEL  ",
		Metalico:   dec("150"),
		Ingreso:    dec("140"),
	}
	require.NoError(t, svc.Guardar(ctx, hubID, dto.GuardarLiquidacionesRequest{Entries: []dto.LiquidacionEntry{entry}}))

	// Same key again with different values replaces the row.
	entry.Metalico = dec("200")
	require.NoError(t, svc.Guardar(ctx, hubID, dto.GuardarLiquidacionesRequest{Entries: []dto.LiquidacionEntry{entry}}))
	assert.Len(t, rows.rows, 1)

	list, err := svc.ListByRuta(ctx, rutaID, 2025, 4)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Metalico.Equal(dec("200")))
	assert.Equal(t, "manuel", list[0].Repartidor) // normalized
	assert.True(t, list[0].Diferencia.Equal(dec("60")))
}

func TestResumenPorRutaDetectaDescuadres(t *testing.T) {
	svc, hubs, rutas, _ := newLiquidacionFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Córdoba")
	rutaID := rutas.addRuta(hubID, "Ruta Norte")

	entries := []dto.LiquidacionEntry{
		{RutaID: rutaID.String(), Fecha: "2025-04-01", Repartidor: "manuel", Metalico: dec("150"), Ingreso: dec("140")},
		{RutaID: rutaID.String(), Fecha: "2025-04-02", Repartidor: "manuel", Metalico: dec("100"), Ingreso: dec("100")},
		{RutaID: rutaID.String(), Fecha: "2025-04-03", Repartidor: "lucía", Metalico: dec("80"), Ingreso: dec("70")},
	}
	require.NoError(t, svc.Guardar(ctx, hubID, dto.GuardarLiquidacionesRequest{Entries: entries}))

	resumen, err := svc.Resumen(ctx, hubID, 2025, 4)
	require.NoError(t, err)
	require.Len(t, resumen.ByRoute, 1)

	ruta := resumen.ByRoute[0]
	assert.True(t, ruta.TotalMetalico.Equal(dec("330")))
	assert.True(t, ruta.TotalIngreso.Equal(dec("310")))
	assert.True(t, ruta.Descuadre.Equal(dec("20")))
	// Only the two non-zero days, ordered by fecha.
	require.Len(t, ruta.DescuadresDetectados, 2)
	assert.Equal(t, "2025-04-01", ruta.DescuadresDetectados[0].Fecha)
	assert.Equal(t, "2025-04-03", ruta.DescuadresDetectados[1].Fecha)
}

func TestResumenPorRepartidorEstado(t *testing.T) {
	rutaID := uuid.New()
	rutas := []model.Ruta{{ID: rutaID, Name: "R1"}}
	rows := []model.Liquidacion{
		{RutaID: rutaID, Fecha: "2025-04-01", Repartidor: "deudor", Metalico: dec("150"), Ingreso: dec("140")},
		{RutaID: rutaID, Fecha: "2025-04-02", Repartidor: "acreedor", Metalico: dec("90"), Ingreso: dec("100")},
		{RutaID: rutaID, Fecha: "2025-04-03", Repartidor: "justo", Metalico: dec("50"), Ingreso: dec("50")},
	}

	resumen := service.BuildResumenLiquidaciones(rutas, rows)
	require.Len(t, resumen.ByRepartidor, 3)

	// Same snapshot in, same summary out; the input rows are not mutated.
	assert.Equal(t, resumen, service.BuildResumenLiquidaciones(rutas, rows))

	byName := make(map[string]dto.ResumenRepartidor)
	for _, r := range resumen.ByRepartidor {
		byName[r.Repartidor] = r
	}
	assert.Equal(t, service.EstadoDebeDinero, byName["deudor"].Estado)
	assert.Equal(t, service.EstadoAFavor, byName["acreedor"].Estado)
	assert.Equal(t, service.EstadoCuadrado, byName["justo"].Estado)
	assert.True(t, byName["deudor"].Total.Equal(dec("10")))
	assert.True(t, byName["acreedor"].Total.Equal(dec("-10")))
}

func TestResumenIncludesRoutesWithoutEntries(t *testing.T) {
	svc, hubs, rutas, _ := newLiquidacionFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cádiz")
	rutas.addRuta(hubID, "Ruta vacía")

	resumen, err := svc.Resumen(ctx, hubID, 2025, 1)
	require.NoError(t, err)
	require.Len(t, resumen.ByRoute, 1)
	assert.True(t, resumen.ByRoute[0].Descuadre.IsZero())
	assert.Empty(t, resumen.ByRoute[0].DescuadresDetectados)
	assert.Empty(t, resumen.ByRepartidor)
}

func TestDeleteRutaRequiresMatchingHub(t *testing.T) {
	svc, hubs, rutas, _ := newLiquidacionFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")
	rutaID := rutas.addRuta(hubA, "Ruta 1")

	assert.Error(t, svc.DeleteRuta(ctx, hubB, rutaID))
	assert.NoError(t, svc.DeleteRuta(ctx, hubA, rutaID))
}
