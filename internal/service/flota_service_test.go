package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlotaFixture() (service.FlotaService, *memHubRepo) {
	incidencias := newMemIncidenciaRepo()
	vehiculos := newMemVehiculoRepo(incidencias)
	hubs := newMemHubRepo()
	return service.NewFlotaService(vehiculos, incidencias, hubs), hubs
}

func TestCrearVehiculoNormalizesPlate(t *testing.T) {
	svc, hubs := newFlotaFixture()
	hubID := hubs.addHub("Córdoba")

	v, err := svc.CreateVehiculo(context.Background(), hubID, dto.CrearVehiculoRequest{
		Plate:       " 1234 abc ",
		VehicleType: "Furgoneta",
	})
	require.NoError(t, err)
	assert.Equal(t, "1234 ABC", v.Plate)
}

func TestCrearVehiculoRejectsUnknownType(t *testing.T) {
	svc, hubs := newFlotaFixture()
	hubID := hubs.addHub("Córdoba")

	_, err := svc.CreateVehiculo(context.Background(), hubID, dto.CrearVehiculoRequest{
		Plate:       "1234ABC",
		VehicleType: "Patinete",
	})
	assert.EqualError(t, err, "Tipo de vehículo inválido")
}

func TestIncidenciaRequiresVehiculoInHub(t *testing.T) {
	svc, hubs := newFlotaFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")

	v, err := svc.CreateVehiculo(ctx, hubA, dto.CrearVehiculoRequest{Plate: "1234ABC", VehicleType: "Camión"})
	require.NoError(t, err)

	_, err = svc.CreateIncidencia(ctx, hubB, dto.CrearIncidenciaRequest{
		VehiculoID: v.ID,
		Title:      "Pinchazo",
	})
	assert.EqualError(t, err, "Vehículo no encontrado")

	inc, err := svc.CreateIncidencia(ctx, hubA, dto.CrearIncidenciaRequest{
		VehiculoID: v.ID,
		Title:      "Pinchazo",
		Fecha:      "12/05/2025",
		Cost:       dec("85.40"),
		Km:         123456,
	})
	require.NoError(t, err)
	assert.Equal(t, v.ID, inc.VehiculoID)
}

func TestDeleteVehiculoCascadesIncidencias(t *testing.T) {
	svc, hubs := newFlotaFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Córdoba")

	v, err := svc.CreateVehiculo(ctx, hubID, dto.CrearVehiculoRequest{Plate: "1234ABC", VehicleType: "Trailer"})
	require.NoError(t, err)
	_, err = svc.CreateIncidencia(ctx, hubID, dto.CrearIncidenciaRequest{VehiculoID: v.ID, Title: "Avería motor"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteVehiculo(ctx, hubID, parseUUIDOrFail(t, v.ID)))

	incidencias, err := svc.ListIncidencias(ctx, hubID)
	require.NoError(t, err)
	assert.Empty(t, incidencias)
}

func TestActualizarIncidenciaPartial(t *testing.T) {
	svc, hubs := newFlotaFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Córdoba")

	v, err := svc.CreateVehiculo(ctx, hubID, dto.CrearVehiculoRequest{Plate: "1234ABC", VehicleType: "Moto"})
	require.NoError(t, err)
	inc, err := svc.CreateIncidencia(ctx, hubID, dto.CrearIncidenciaRequest{
		VehiculoID: v.ID, Title: "Cambio de aceite", Cost: dec("60"),
	})
	require.NoError(t, err)

	cost := dec("75.50")
	updated, err := svc.UpdateIncidencia(ctx, hubID, parseUUIDOrFail(t, inc.ID), dto.ActualizarIncidenciaRequest{Cost: &cost})
	require.NoError(t, err)
	assert.Equal(t, "Cambio de aceite", updated.Title)
	assert.True(t, updated.Cost.Equal(dec("75.50")))
}
