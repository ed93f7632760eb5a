package service

import (
	"context"
	"errors"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompraService interface {
	Create(ctx context.Context, hubID uuid.UUID, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	List(ctx context.Context, hubID uuid.UUID) ([]dto.CompraResponse, error)
	Update(ctx context.Context, hubID, compraID uuid.UUID, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error)
	Delete(ctx context.Context, hubID, compraID uuid.UUID) error
}

type compraService struct {
	compras repository.CompraRepository
	hubs    repository.HubRepository
}

func NewCompraService(compras repository.CompraRepository, hubs repository.HubRepository) CompraService {
	return &compraService{compras: compras, hubs: hubs}
}

func (s *compraService) Create(ctx context.Context, hubID uuid.UUID, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	if _, err := s.hubs.FindByID(ctx, hubID); err != nil {
		return nil, errors.New("Hub no encontrado")
	}
	price := decimal.NewFromInt(1)
	if req.Price != nil {
		price = *req.Price
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	compra := &model.Compra{
		HubID:          hubID,
		Item:           req.Item,
		Specifications: req.Specifications,
		Supplier:       req.Supplier,
		Price:          price,
		Quantity:       quantity,
		Total:          price.Mul(decimal.NewFromInt(int64(quantity))),
	}
	if err := s.compras.Create(ctx, compra); err != nil {
		return nil, err
	}
	resp := toCompraResponse(compra)
	return &resp, nil
}

func (s *compraService) List(ctx context.Context, hubID uuid.UUID) ([]dto.CompraResponse, error) {
	compras, err := s.compras.ListByHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CompraResponse, 0, len(compras))
	for i := range compras {
		out = append(out, toCompraResponse(&compras[i]))
	}
	return out, nil
}

func (s *compraService) Update(ctx context.Context, hubID, compraID uuid.UUID, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	compra, err := s.compras.FindByID(ctx, compraID)
	if err != nil || compra.HubID != hubID {
		return nil, errors.New("Compra no encontrada")
	}
	if req.Item != nil {
		compra.Item = *req.Item
	}
	if req.Specifications != nil {
		compra.Specifications = *req.Specifications
	}
	if req.Supplier != nil {
		compra.Supplier = *req.Supplier
	}
	if req.Price != nil {
		compra.Price = *req.Price
	}
	if req.Quantity != nil {
		compra.Quantity = *req.Quantity
	}
	// Total is always recomputed from the stored fields, never trusted
	// from the client.
	compra.Total = compra.Price.Mul(decimal.NewFromInt(int64(compra.Quantity)))
	if err := s.compras.Update(ctx, compra); err != nil {
		return nil, err
	}
	resp := toCompraResponse(compra)
	return &resp, nil
}

func (s *compraService) Delete(ctx context.Context, hubID, compraID uuid.UUID) error {
	compra, err := s.compras.FindByID(ctx, compraID)
	if err != nil || compra.HubID != hubID {
		return errors.New("Compra no encontrada")
	}
	return s.compras.Delete(ctx, compraID)
}

func toCompraResponse(c *model.Compra) dto.CompraResponse {
	return dto.CompraResponse{
		ID:             c.ID.String(),
		HubID:          c.HubID.String(),
		Item:           c.Item,
		Specifications: c.Specifications,
		Supplier:       c.Supplier,
		Price:          c.Price,
		Quantity:       c.Quantity,
		Total:          c.Total,
	}
}
