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

func TestSeedDefaultsOnlyOnEmptyDatabase(t *testing.T) {
	repo := newMemHubRepo()
	svc := service.NewHubService(repo)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	hubs, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hubs, len(service.DefaultHubs))

	names := make(map[string]bool)
	for _, h := range hubs {
		names[h.Name] = true
	}
	for _, want := range service.DefaultHubs {
		assert.True(t, names[want], "missing seeded hub %q", want)
	}

	// A second call against a populated database is a no-op.
	require.NoError(t, svc.SeedDefaults(ctx))
	again, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(service.DefaultHubs))
}

func TestCrearHubRejectsDuplicateName(t *testing.T) {
	svc := service.NewHubService(newMemHubRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CrearHubRequest{Name: "Albacete"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.CrearHubRequest{Name: "Albacete"})
	assert.EqualError(t, err, "Ya existe un hub con ese nombre")
}

func TestActualizarHubPartial(t *testing.T) {
	svc := service.NewHubService(newMemHubRepo())
	ctx := context.Background()

	hub, err := svc.Create(ctx, dto.CrearHubRequest{Name: "Albacete", Location: "Polígono Campollano"})
	require.NoError(t, err)

	desc := "Centro logístico regional"
	updated, err := svc.Update(ctx, parseUUIDOrFail(t, hub.ID), dto.ActualizarHubRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Albacete", updated.Name)
	assert.Equal(t, "Polígono Campollano", updated.Location)
	assert.Equal(t, desc, updated.Description)
}

func TestDeleteHubUnknown(t *testing.T) {
	svc := service.NewHubService(newMemHubRepo())
	assert.EqualError(t, svc.Delete(context.Background(), uuid.New()), "Hub no encontrado")
}
