package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactoFixture() (service.ContactoService, *memHubRepo) {
	hubs := newMemHubRepo()
	return service.NewContactoService(newMemContactoRepo(), hubs), hubs
}

func TestContactoCRUD(t *testing.T) {
	svc, hubs := newContactoFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cádiz")

	c, err := svc.Create(ctx, hubID, dto.CrearContactoRequest{
		Name:     "Juan Pérez",
		Position: "Jefe de almacén",
		Phone:    "600123456",
	})
	require.NoError(t, err)

	phone := "600654321"
	updated, err := svc.Update(ctx, hubID, parseUUIDOrFail(t, c.ID), dto.ActualizarContactoRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", updated.Name)
	assert.Equal(t, phone, updated.Phone)

	list, err := svc.List(ctx, hubID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, hubID, parseUUIDOrFail(t, c.ID)))
	list, err = svc.List(ctx, hubID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestContactoHubOwnership(t *testing.T) {
	svc, hubs := newContactoFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")

	c, err := svc.Create(ctx, hubA, dto.CrearContactoRequest{Name: "Juan Pérez"})
	require.NoError(t, err)
	assert.EqualError(t, svc.Delete(ctx, hubB, parseUUIDOrFail(t, c.ID)), "Contacto no encontrado")
}
