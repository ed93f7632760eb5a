package service_test

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFestivoFixture() (service.FestivoService, *memHubRepo) {
	hubs := newMemHubRepo()
	return service.NewFestivoService(newMemFestivoRepo(), hubs), hubs
}

func TestListYearSeedsNationalPresets(t *testing.T) {
	svc, hubs := newFestivoFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Puerta Toledo")

	festivos, err := svc.ListYear(ctx, hubID, 2025)
	require.NoError(t, err)
	require.Len(t, festivos, 9)

	byFecha := make(map[string]dto.FestivoResponse)
	for _, f := range festivos {
		assert.True(t, f.IsPreset)
		assert.Equal(t, model.HolidayNacional, f.Type)
		byFecha[f.Fecha] = f
	}
	assert.Equal(t, "Año Nuevo", byFecha["2025-01-01"].Name)
	assert.Equal(t, "Natividad del Señor", byFecha["2025-12-25"].Name)
	assert.Equal(t, "Fiesta Nacional de España", byFecha["2025-10-12"].Name)
}

func TestListYearSeedIsIdempotent(t *testing.T) {
	svc, hubs := newFestivoFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Puerta Toledo")

	_, err := svc.ListYear(ctx, hubID, 2025)
	require.NoError(t, err)
	again, err := svc.ListYear(ctx, hubID, 2025)
	require.NoError(t, err)
	assert.Len(t, again, 9)
}

func TestListYearSeedsPerHubAndYear(t *testing.T) {
	svc, hubs := newFestivoFixture()
	ctx := context.Background()
	hubA := hubs.addHub("Hub A")
	hubB := hubs.addHub("Hub B")

	a2025, err := svc.ListYear(ctx, hubA, 2025)
	require.NoError(t, err)
	b2026, err := svc.ListYear(ctx, hubB, 2026)
	require.NoError(t, err)

	assert.Len(t, a2025, 9)
	assert.Len(t, b2026, 9)
	for _, f := range b2026 {
		assert.Equal(t, "2026", f.Fecha[:4])
	}
}

func TestCrearFestivoCustom(t *testing.T) {
	svc, hubs := newFestivoFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cáceres")

	f, err := svc.Create(ctx, hubID, dto.CrearFestivoRequest{
		Fecha: "2025-09-08",
		Name:  "Día de Extremadura",
		Type:  model.HolidayAutonomico,
	})
	require.NoError(t, err)
	assert.False(t, f.IsPreset)

	require.NoError(t, svc.Delete(ctx, hubID, parseUUIDOrFail(t, f.ID)))
}

func TestCrearFestivoRejectsUnknownType(t *testing.T) {
	svc, hubs := newFestivoFixture()
	hubID := hubs.addHub("Cáceres")

	_, err := svc.Create(context.Background(), hubID, dto.CrearFestivoRequest{
		Fecha: "2025-09-08",
		Name:  "Inventado",
		Type:  "puente",
	})
	assert.EqualError(t, err, "Tipo de festivo inválido")
}

func TestDeleteFestivoPresetRejected(t *testing.T) {
	svc, hubs := newFestivoFixture()
	ctx := context.Background()
	hubID := hubs.addHub("Cáceres")

	festivos, err := svc.ListYear(ctx, hubID, 2025)
	require.NoError(t, err)
	require.NotEmpty(t, festivos)

	err = svc.Delete(ctx, hubID, parseUUIDOrFail(t, festivos[0].ID))
	assert.ErrorIs(t, err, service.ErrFestivoPreset)
}
