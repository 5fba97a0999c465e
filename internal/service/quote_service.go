package service

import (
	"context"
	"time"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteService manages price quotes. A quote freezes product prices the same
// way a sale does, but never reserves or mutates stock.
type QuoteService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.QuoteResponse, error)
	List(ctx context.Context, filter dto.QuoteFilter) (*dto.QuoteListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type quoteService struct {
	repo         repository.QuoteRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

func NewQuoteService(repo repository.QuoteRepository, productRepo repository.ProductRepository, customerRepo repository.CustomerRepository) QuoteService {
	return &quoteService{repo: repo, productRepo: productRepo, customerRepo: customerRepo}
}

func (s *quoteService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperror.New(apperror.InvalidInput, "a quote requires at least one item")
	}

	var customerID *uuid.UUID
	customerName := model.WalkInCustomerLabel
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "invalid customer_id: %s", *req.CustomerID)
		}
		customer, err := s.customerRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, apperror.Newf(apperror.NotFound, "customer %s not found", cid)
		}
		customerID = &customer.ID
		customerName = customer.Name
	} else if req.CustomerName != nil && *req.CustomerName != "" {
		customerName = *req.CustomerName
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "invalid product_id: %s", item.ProductID)
		}
		ids = append(ids, pid)
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	quote := model.Quote{
		CustomerID:   customerID,
		CustomerName: customerName,
		UserID:       userID,
		Status:       model.QuotePending,
		Notes:        req.Notes,
	}
	if req.ValidDays > 0 {
		until := time.Now().AddDate(0, 0, req.ValidDays)
		quote.ValidUntil = &until
	}

	total := decimal.Zero
	for i, item := range req.Items {
		p, ok := byID[ids[i]]
		if !ok {
			return nil, apperror.New(apperror.InvalidInput, "one or more products do not exist")
		}
		price := p.Price
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		quote.Items = append(quote.Items, model.QuoteItem{
			ProductID: p.ID,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	quote.Total = total

	if err := s.repo.Create(ctx, &quote); err != nil {
		return nil, err
	}

	resp := quoteToResponse(&quote)
	for i := range quote.Items {
		if p, ok := byID[quote.Items[i].ProductID]; ok {
			resp.Items[i].ProductName = p.Name
		}
	}
	return resp, nil
}

func (s *quoteService) Get(ctx context.Context, id uuid.UUID) (*dto.QuoteResponse, error) {
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "quote %s not found", id)
	}
	return quoteToResponse(quote), nil
}

func (s *quoteService) List(ctx context.Context, filter dto.QuoteFilter) (*dto.QuoteListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	quotes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, *quoteToResponse(&quotes[i]))
	}
	return &dto.QuoteListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *quoteService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.QuoteResponse, error) {
	if !model.ValidQuoteStatus(status) {
		return nil, apperror.Newf(apperror.InvalidInput, "invalid quote status: %s", status)
	}
	quote, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "quote %s not found", id)
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quote.Status = status
	return quoteToResponse(quote), nil
}

func (s *quoteService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperror.Newf(apperror.NotFound, "quote %s not found", id)
	}
	return s.repo.Delete(ctx, id)
}

func quoteToResponse(q *model.Quote) *dto.QuoteResponse {
	items := make([]dto.QuoteItemResponse, 0, len(q.Items))
	for _, item := range q.Items {
		r := dto.QuoteItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if item.Product != nil {
			r.ProductName = item.Product.Name
		}
		items = append(items, r)
	}
	resp := &dto.QuoteResponse{
		ID:           q.ID.String(),
		CustomerName: q.CustomerName,
		Status:       q.Status,
		Items:        items,
		Total:        q.Total,
		Notes:        q.Notes,
		CreatedAt:    q.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if q.CustomerID != nil {
		cid := q.CustomerID.String()
		resp.CustomerID = &cid
	}
	if q.ValidUntil != nil {
		until := q.ValidUntil.Format("2006-01-02")
		resp.ValidUntil = &until
	}
	return resp
}
