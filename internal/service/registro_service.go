package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Categories are the fixed record sections every hub page exposes.
var Categories = []dto.CategoryResponse{
	{Name: "Asistencias", Icon: "calendar"},
	{Name: "Liquidaciones", Icon: "euro"},
	{Name: "Flota", Icon: "truck"},
	{Name: "Historico de incidencias", Icon: "alert-triangle"},
	{Name: "Repartos", Icon: "map"},
	{Name: "Compras", Icon: "shopping-cart"},
	{Name: "Kilos/Litros", Icon: "scale"},
	{Name: "Contactos", Icon: "phone"},
}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

const (
	statsCacheKey = "hubmanager:stats"
	statsCacheTTL = 60 * time.Second
)

type RegistroService interface {
	Create(ctx context.Context, createdBy uuid.UUID, req dto.CrearRegistroRequest) (*dto.RegistroResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RegistroResponse, error)
	List(ctx context.Context, hubID uuid.UUID, category string) ([]dto.RegistroResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ActualizarRegistroRequest) (*dto.RegistroResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AttachFile stores an uploaded file inline on the record, base64
	// encoded.
	AttachFile(ctx context.Context, id uuid.UUID, fileName, contentType string, data []byte) (*dto.RegistroResponse, error)

	Categories(ctx context.Context) []dto.CategoryResponse
	// Stats aggregates global counters, cached in Redis for a minute.
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type registroService struct {
	registros repository.RegistroRepository
	hubs      repository.HubRepository
	users     repository.UserRepository
	rdb       *redis.Client
}

func NewRegistroService(registros repository.RegistroRepository, hubs repository.HubRepository, users repository.UserRepository, rdb *redis.Client) RegistroService {
	return &registroService{registros: registros, hubs: hubs, users: users, rdb: rdb}
}

func (s *registroService) Create(ctx context.Context, createdBy uuid.UUID, req dto.CrearRegistroRequest) (*dto.RegistroResponse, error) {
	hubID, err := uuid.Parse(req.HubID)
	if err != nil {
		return nil, errors.New("Identificador de hub inválido")
	}
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	if !ValidCategory(req.Category) {
		return nil, errors.New("Categoría inválida")
	}
	reg := &model.Registro{
		HubID:       hubID,
		Category:    req.Category,
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   createdBy,
	}
	if err := s.registros.Create(ctx, reg); err != nil {
		return nil, err
	}
	s.invalidateStats(ctx)
	resp := toRegistroResponse(reg)
	return &resp, nil
}

func (s *registroService) Get(ctx context.Context, id uuid.UUID) (*dto.RegistroResponse, error) {
	reg, err := s.registros.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Registro no encontrado")
	}
	resp := toRegistroResponse(reg)
	return &resp, nil
}

func (s *registroService) List(ctx context.Context, hubID uuid.UUID, category string) ([]dto.RegistroResponse, error) {
	registros, err := s.registros.List(ctx, hubID, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RegistroResponse, 0, len(registros))
	for i := range registros {
		out = append(out, toRegistroResponse(&registros[i]))
	}
	return out, nil
}

func (s *registroService) Update(ctx context.Context, id uuid.UUID, req dto.ActualizarRegistroRequest) (*dto.RegistroResponse, error) {
	reg, err := s.registros.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Registro no encontrado")
	}
	if req.Title != nil {
		reg.Title = *req.Title
	}
	if req.Description != nil {
		reg.Description = *req.Description
	}
	if err := s.registros.Update(ctx, reg); err != nil {
		return nil, err
	}
	resp := toRegistroResponse(reg)
	return &resp, nil
}

func (s *registroService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.registros.Delete(ctx, id); err != nil {
		return errors.New("Registro no encontrado")
	}
	s.invalidateStats(ctx)
	return nil
}

func (s *registroService) AttachFile(ctx context.Context, id uuid.UUID, fileName, contentType string, data []byte) (*dto.RegistroResponse, error) {
	reg, err := s.registros.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("Registro no encontrado")
	}
	encoded := base64.StdEncoding.EncodeToString(data)
	reg.FileName = &fileName
	reg.FileData = &encoded
	reg.ContentType = &contentType
	if err := s.registros.Update(ctx, reg); err != nil {
		return nil, err
	}
	resp := toRegistroResponse(reg)
	return &resp, nil
}

func (s *registroService) Categories(ctx context.Context) []dto.CategoryResponse {
	return Categories
}

func (s *registroService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var cached dto.StatsResponse
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	totalHubs, err := s.hubs.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalRecords, err := s.registros.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingUsers, err := s.users.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.registros.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		TotalHubs:         totalHubs,
		TotalRecords:      totalRecords,
		TotalUsers:        totalUsers,
		PendingUsers:      pendingUsers,
		RecordsByCategory: byCategory,
	}
	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, statsCacheKey, raw, statsCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Msg("stats cache write failed")
			}
		}
	}
	return stats, nil
}

func (s *registroService) invalidateStats(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Debug().Err(err).Msg("stats cache invalidation failed")
	}
}

func toRegistroResponse(r *model.Registro) dto.RegistroResponse {
	return dto.RegistroResponse{
		ID:          r.ID.String(),
		HubID:       r.HubID.String(),
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		FileName:    r.FileName,
		FileData:    r.FileData,
		ContentType: r.ContentType,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
