package service

import (
	"context"
	"errors"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultHubs is the seed set created on first boot against an empty database.
var DefaultHubs = []string{"Puerta Toledo", "Dibecesa", "Cáceres", "Córdoba", "Cartagena", "Cádiz"}

type HubService interface {
	Create(ctx context.Context, req dto.CrearHubRequest) (*dto.HubResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.HubResponse, error)
	List(ctx context.Context) ([]dto.HubResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ActualizarHubRequest) (*dto.HubResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDefaults(ctx context.Context) error
}

type hubService struct {
	repo repository.HubRepository
}

func NewHubService(repo repository.HubRepository) HubService {
	return &hubService{repo: repo}
}

func (s *hubService) Create(ctx context.Context, req dto.CrearHubRequest) (*dto.HubResponse, error) {
	if _, err := s.repo.FindByName(ctx, req.Name); err == nil {
		return nil, errors.New("Ya existe un hub con ese nombre")
	}
	hub := &model.Hub{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if err := s.repo.Create(ctx, hub); err != nil {
		return nil, err
	}
	resp := toHubResponse(hub)
	return &resp, nil
}

func (s *hubService) Get(ctx context.Context, id uuid.UUID) (*dto.HubResponse, error) {
	hub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	resp := toHubResponse(hub)
	return &resp, nil
}

func (s *hubService) List(ctx context.Context) ([]dto.HubResponse, error) {
	hubs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HubResponse, 0, len(hubs))
	for i := range hubs {
		out = append(out, toHubResponse(&hubs[i]))
	}
	return out, nil
}

func (s *hubService) Update(ctx context.Context, id uuid.UUID, req dto.ActualizarHubRequest) (*dto.HubResponse, error) {
	hub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if req.Name != nil {
		hub.Name = *req.Name
	}
	if req.Description != nil {
		hub.Description = *req.Description
	}
	if req.Location != nil {
		hub.Location = *req.Location
	}
	if err := s.repo.Update(ctx, hub); err != nil {
		return nil, err
	}
	resp := toHubResponse(hub)
	return &resp, nil
}

// Delete removes the hub and, in cascade, every record scoped to it.
func (s *hubService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return errors.New("Hub no encontrado")
	}
	return s.repo.DeleteCascade(ctx, id)
}

func (s *hubService) SeedDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, name := range DefaultHubs {
		if err := s.repo.Create(ctx, &model.Hub{Name: name}); err != nil {
			return err
		}
	}
	log.Info().Int("hubs", len(DefaultHubs)).Msg("default hubs seeded")
	return nil
}

func toHubResponse(h *model.Hub) dto.HubResponse {
	return dto.HubResponse{
		ID:          h.ID.String(),
		Name:        h.Name,
		Description: h.Description,
		Location:    h.Location,
		CreatedAt:   h.CreatedAt.UTC().Format(time.RFC3339),
	}
}
