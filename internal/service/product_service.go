package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	// AdjustStock applies a signed delta through the inventory ledger.
	// Negative deltas that exceed the available stock are rejected.
	AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
	// ImportCSV bulk-creates products from "name,category,price,cost,stock" rows.
	ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error)
}

type productService struct {
	repo      repository.ProductRepository
	inventory InventoryService
}

func NewProductService(repo repository.ProductRepository, inventory InventoryService) ProductService {
	return &productService{repo: repo, inventory: inventory}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if existing, err := s.repo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, apperror.Newf(apperror.Conflict, "a product named %q already exists", req.Name)
	}
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Active:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "product %s not found", id)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "product %s not found", id)
	}
	if req.Name != nil && *req.Name != p.Name {
		if existing, err := s.repo.FindByName(ctx, *req.Name); err == nil && existing != nil {
			return nil, apperror.Newf(apperror.Conflict, "a product named %q already exists", *req.Name)
		}
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Cost != nil {
		p.Cost = *req.Cost
	}
	if req.MinStock != nil {
		p.MinStock = *req.MinStock
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperror.Newf(apperror.NotFound, "product %s not found", id)
	}
	return s.repo.SoftDelete(ctx, id)
}

func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperror.Newf(apperror.NotFound, "product %s not found", id)
	}
	return s.repo.Reactivate(ctx, id)
}

func (s *productService) AdjustStock(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "product %s not found", id)
	}
	if req.Delta == 0 {
		return nil, apperror.New(apperror.InvalidInput, "delta must be non-zero")
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if req.Delta > 0 {
			return s.inventory.IncrementTx(ctx, tx, p, req.Delta, model.MovementAdjustment, req.Reason, nil)
		}
		qty := -req.Delta
		if err := s.inventory.CheckAvailability(p, qty); err != nil {
			return err
		}
		return s.inventory.DecrementTx(ctx, tx, p, qty, model.MovementAdjustment, req.Reason, nil)
	})
	if txErr != nil {
		return nil, txErr
	}

	p, err = s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// ImportCSV expects a header row "name,category,price,cost,stock". Rows with
// parse errors or duplicate names are skipped and reported, not fatal.
func (s *productService) ImportCSV(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperror.New(apperror.InvalidInput, "empty or unreadable CSV")
	}
	if len(header) < 5 || !strings.EqualFold(strings.TrimSpace(header[0]), "name") {
		return nil, apperror.New(apperror.InvalidInput, "expected header: name,category,price,cost,stock")
	}

	result := &dto.ImportResult{}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		price, perr := decimal.NewFromString(strings.TrimSpace(record[2]))
		cost, cerr := decimal.NewFromString(strings.TrimSpace(record[3]))
		stock, serr := strconv.Atoi(strings.TrimSpace(record[4]))
		if perr != nil || cerr != nil || serr != nil || stock < 0 {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: invalid numeric field", line))
			continue
		}

		name := strings.TrimSpace(record[0])
		if existing, err := s.repo.FindByName(ctx, name); err == nil && existing != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: product %q already exists", line, name))
			continue
		}

		p := &model.Product{
			Name:     name,
			Category: strings.TrimSpace(record[1]),
			Price:    price,
			Cost:     cost,
			Stock:    stock,
			Active:   true,
		}
		if err := s.repo.Create(ctx, p); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Created++
	}
	return result, nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
		Cost:        p.Cost,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
