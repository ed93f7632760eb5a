package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompraFixture() (service.CompraService, *memHubRepo) {
	hubs := newMemHubRepo()
	return service.NewCompraService(newMemCompraRepo(), hubs), hubs
}

func TestCrearCompraDefaultsPriceAndQuantity(t *testing.T) {
	svc, hubs := newCompraFixture()
	hubID := hubs.addHub("Cartagena")

	compra, err := svc.Create(context.Background(), hubID, dto.CrearCompraRequest{Item: "Palets"})
	require.NoError(t, err)
	assert.True(t, compra.Price.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 1, compra.Quantity)
	assert.True(t, compra.Total.Equal(decimal.NewFromInt(1)))

	// Omitted price with explicit quantity: total follows the default.
	qty := 3
	compra, err = svc.Create(context.Background(), hubID, dto.CrearCompraRequest{Item: "Palets", Quantity: &qty})
	require.NoError(t, err)
	assert.True(t, compra.Total.Equal(decimal.NewFromInt(3)))
}

func TestCrearCompraComputesTotal(t *testing.T) {
	svc, hubs := newCompraFixture()
	hubID := hubs.addHub("Cartagena")

	price := dec("12.50")
	qty := 3
	compra, err := svc.Create(context.Background(), hubID, dto.CrearCompraRequest{
		Item:     "Cajas",
		Supplier: "Proveedor SL",
		Price:    &price,
		Quantity: &qty,
	})
	require.NoError(t, err)
	assert.True(t, compra.Total.Equal(dec("37.50")))
}

func TestActualizarCompraRecomputesTotal(t *testing.T) {
	svc, hubs := newCompraFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cartagena")

	price := dec("10")
	qty := 2
	compra, err := svc.Create(ctx, hubID, dto.CrearCompraRequest{Item: "Cintas", Price: &price, Quantity: &qty})
	require.NoError(t, err)

	newQty := 5
	updated, err := svc.Update(ctx, hubID, parseUUIDOrFail(t, compra.ID), dto.ActualizarCompraRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(dec("10")))
	assert.True(t, updated.Total.Equal(dec("50")))
}

func TestCompraHubOwnership(t *testing.T) {
	svc, hubs := newCompraFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")

	compra, err := svc.Create(ctx, hubA, dto.CrearCompraRequest{Item: "Guantes"})
	require.NoError(t, err)

	item := "Otros"
	_, err = svc.Update(ctx, hubB, parseUUIDOrFail(t, compra.ID), dto.ActualizarCompraRequest{Item: &item})
	assert.EqualError(t, err, "Compra no encontrada")
	assert.EqualError(t, svc.Delete(ctx, hubB, parseUUIDOrFail(t, compra.ID)), "Compra no encontrada")
	assert.NoError(t, svc.Delete(ctx, hubA, parseUUIDOrFail(t, compra.ID)))
}

func TestCrearCompraUnknownHub(t *testing.T) {
	svc, _ := newCompraFixture()
	_, err := svc.Create(context.Background(), uuid.New(), dto.CrearCompraRequest{Item: "Palets"})
	assert.EqualError(t, err, "Hub no encontrado")
}

func parseUUIDOrFail(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
