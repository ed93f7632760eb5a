package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKilosFixture() (service.KilosLitrosService, *memHubRepo, *memRutaRepo) {
	hubs := newMemHubRepo()
	rutas := newMemRutaRepo()
	svc := service.NewKilosLitrosService(newMemKilosRepo(), rutas)
	return svc, hubs, rutas
}

func TestCrearKilosLitrosNormalizesRepartidor(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	hubID := hubs.addHub("Dibecesa")
	rutaID := rutas.addRuta(hubID, "Ruta 1")

	entry, err := svc.Create(context.Background(), hubID, dto.CrearKilosLitrosRequest{
		RutaID:     rutaID.String(),
		Fecha:      "2025-05-12",
		Repartidor: "  PEDRO ",
		Clientes:   14,
		Kilos:      dec("320.5"),
		Litros:     dec("150"),
		Bultos:     40,
	})
	require.NoError(t, err)
	assert.Equal(t, "pedro", entry.Repartidor)
}

func TestCrearKilosLitrosRejectsForeignRuta(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")
	rutaID := rutas.addRuta(hubA, "Ruta ajena")

	_, err := svc.Create(context.Background(), hubB, dto.CrearKilosLitrosRequest{
		RutaID:     rutaID.String(),
		Fecha:      "2025-05-12",
		Repartidor: "pedro",
	})
	assert.EqualError(t, err, "Ruta no encontrada")
}

func TestCrearKilosLitrosRejectsMalformedDate(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	hubID := hubs.addHub("Dibecesa")
	rutaID := rutas.addRuta(hubID, "Ruta 1")

	_, err := svc.Create(context.Background(), hubID, dto.CrearKilosLitrosRequest{
		RutaID:     rutaID.String(),
		Fecha:      "12/05/2025",
		Repartidor: "pedro",
	})
	assert.Error(t, err)
}

func TestResumenKilosLitrosAggregates(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Dibecesa")
	ruta1 := rutas.addRuta(hubID, "Ruta A")
	ruta2 := rutas.addRuta(hubID, "Ruta B")

	entries := []dto.CrearKilosLitrosRequest{
		{RutaID: ruta1.String(), Fecha: "2025-05-01", Repartidor: "ana", Clientes: 10, Kilos: dec("100"), Litros: dec("50"), Bultos: 20},
		{RutaID: ruta1.String(), Fecha: "2025-05-02", Repartidor: "pedro", Clientes: 5, Kilos: dec("40.5"), Litros: dec("30"), Bultos: 8},
		{RutaID: ruta2.String(), Fecha: "2025-05-03", Repartidor: "ana", Clientes: 7, Kilos: dec("60"), Litros: dec("20.5"), Bultos: 12},
	}
	for _, e := range entries {
		_, err := svc.Create(ctx, hubID, e)
		require.NoError(t, err)
	}

	resumen, err := svc.Resumen(ctx, hubID, 2025, 5)
	require.NoError(t, err)

	assert.Equal(t, 22, resumen.Totals.Clientes)
	assert.True(t, resumen.Totals.Kilos.Equal(dec("200.5")))
	assert.True(t, resumen.Totals.Litros.Equal(dec("100.5")))
	assert.Equal(t, 40, resumen.Totals.Bultos)

	require.Len(t, resumen.ByRepartidor, 2)
	assert.Equal(t, "ana", resumen.ByRepartidor[0].Repartidor)
	assert.Equal(t, 17, resumen.ByRepartidor[0].Clientes)
	assert.Equal(t, "pedro", resumen.ByRepartidor[1].Repartidor)

	require.Len(t, resumen.ByRoute, 2)
	assert.Equal(t, "Ruta A", resumen.ByRoute[0].RutaName)
	assert.True(t, resumen.ByRoute[0].Kilos.Equal(dec("140.5")))
	assert.Equal(t, "Ruta B", resumen.ByRoute[1].RutaName)
}

func TestResumenOmitsRoutesWithoutEntries(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Dibecesa")
	rutas.addRuta(hubID, "Ruta sin reparto")

	resumen, err := svc.Resumen(ctx, hubID, 2025, 5)
	require.NoError(t, err)
	assert.Empty(t, resumen.ByRoute)
	assert.Empty(t, resumen.ByRepartidor)
}

func TestDeleteKilosLitrosUnknownID(t *testing.T) {
	svc, hubs, _ := newKilosFixture()
	hubID := hubs.addHub("Dibecesa")
	assert.EqualError(t, svc.Delete(context.Background(), hubID, uuid.New()), "Registro no encontrado")
}

func TestDeleteKilosLitrosRequiresMatchingHub(t *testing.T) {
	svc, hubs, rutas := newKilosFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")
	rutaID := rutas.addRuta(hubA, "Ruta 1")

	entry, err := svc.Create(ctx, hubA, dto.CrearKilosLitrosRequest{
		RutaID:     rutaID.String(),
		Fecha:      "2025-05-12",
		Repartidor: "pedro",
		Clientes:   3,
		Kilos:      dec("25"),
		Litros:     dec("10"),
		Bultos:     5,
	})
	require.NoError(t, err)
	entryID := parseUUIDOrFail(t, entry.ID)

	// A caller scoped to another hub cannot delete the entry.
	assert.EqualError(t, svc.Delete(ctx, hubB, entryID), "Registro no encontrado")

	listed, err := svc.List(ctx, hubA, 2025, 5)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// The owning hub can.
	require.NoError(t, svc.Delete(ctx, hubA, entryID))
	listed, err = svc.List(ctx, hubA, 2025, 5)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
