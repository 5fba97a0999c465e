package service

import (
	"context"
	"fmt"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryService is the ledger that owns product stock counters. All stock
// mutations flow through it so that every change lands in the movement audit
// trail and the non-negativity invariant is enforced in one place.
//
// The Tx methods must be called inside the caller's transaction: the ledger
// itself never opens one. Race safety between concurrent sales comes from the
// conditional UPDATE in the repository (stock >= qty), not from app-level
// locking.
type InventoryService interface {
	// CheckAvailability reports, without mutating anything, whether the
	// product can cover the requested quantity.
	CheckAvailability(p *model.Product, requested int) error
	// DecrementTx reduces stock by qty and records a movement row. Fails the
	// transaction when a concurrent writer consumed the stock first.
	DecrementTx(ctx context.Context, tx *gorm.DB, p *model.Product, qty int, movType, reason string, ref *uuid.UUID) error
	// IncrementTx restores stock by qty and records a movement row.
	// Unconditional; the catalog owns any max-stock policy.
	IncrementTx(ctx context.Context, tx *gorm.DB, p *model.Product, qty int, movType, reason string, ref *uuid.UUID) error
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
	ListLowStock(ctx context.Context) ([]dto.LowStockItem, error)
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
}

func NewInventoryService(productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository) InventoryService {
	return &inventoryService{productRepo: productRepo, movementRepo: movementRepo}
}

func (s *inventoryService) CheckAvailability(p *model.Product, requested int) error {
	if p.Stock < requested {
		return &apperror.StockError{
			ProductName: p.Name,
			Available:   p.Stock,
			Requested:   requested,
		}
	}
	return nil
}

func (s *inventoryService) DecrementTx(ctx context.Context, tx *gorm.DB, p *model.Product, qty int, movType, reason string, ref *uuid.UUID) error {
	// Snapshot the counter first: p may alias repository state, and the
	// repo mutation below would update it in place.
	before := p.Stock
	if err := s.productRepo.DecrementStockTx(ctx, tx, p.ID, qty); err != nil {
		// A failed conditional update means a concurrent sale won the race.
		// Abort instead of clamping; the whole transaction rolls back.
		return fmt.Errorf("decrement stock of %s: %w", p.Name, err)
	}
	return s.movementRepo.CreateTx(ctx, tx, &model.StockMovement{
		ProductID:   p.ID,
		Type:        movType,
		Quantity:    -qty,
		StockBefore: before,
		StockAfter:  before - qty,
		Reason:      reason,
		ReferenceID: ref,
	})
}

func (s *inventoryService) IncrementTx(ctx context.Context, tx *gorm.DB, p *model.Product, qty int, movType, reason string, ref *uuid.UUID) error {
	before := p.Stock
	if err := s.productRepo.IncrementStockTx(ctx, tx, p.ID, qty); err != nil {
		return fmt.Errorf("restore stock of %s: %w", p.Name, err)
	}
	return s.movementRepo.CreateTx(ctx, tx, &model.StockMovement{
		ProductID:   p.ID,
		Type:        movType,
		Quantity:    qty,
		StockBefore: before,
		StockAfter:  before + qty,
		Reason:      reason,
		ReferenceID: ref,
	})
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	movements, total, err := s.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		name := ""
		if m.Product != nil {
			name = m.Product.Name
		}
		resp := dto.MovementResponse{
			ID:          m.ID.String(),
			ProductID:   m.ProductID.String(),
			ProductName: name,
			Type:        m.Type,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
		if m.ReferenceID != nil {
			ref := m.ReferenceID.String()
			resp.ReferenceID = &ref
		}
		items = append(items, resp)
	}
	return &dto.MovementListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventoryService) ListLowStock(ctx context.Context) ([]dto.LowStockItem, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(products))
	for _, p := range products {
		items = append(items, dto.LowStockItem{
			ID:       p.ID.String(),
			Name:     p.Name,
			Stock:    p.Stock,
			MinStock: p.MinStock,
		})
	}
	return items, nil
}
