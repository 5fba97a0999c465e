package service

import (
	"context"
	"fmt"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleService interface {
	Create(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type saleService struct {
	repo         repository.SaleRepository
	inventory    InventoryService
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

func NewSaleService(
	repo repository.SaleRepository,
	inventory InventoryService,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) SaleService {
	return &saleService{
		repo:         repo,
		inventory:    inventory,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
	}
}

// ── Create ────────────────────────────────────────────────────────────────────
// Validate-then-commit:
//   1. Resolve customer and all products (pre-flight, outside the TX)
//   2. Per item, in input order: availability check, short-circuit on the
//      first failure; capture unit price (explicit or catalog)
//   3. total = Σ quantity × unit price
//   4. BEGIN TX: create sale+items, decrement stock per item, write movement
//      rows — commit everything or nothing
//
// Between step 2 and the decrement a concurrent sale may consume the stock;
// the conditional UPDATE inside DecrementTx then fails the whole transaction,
// so the counter can never go negative.

func (s *saleService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperror.New(apperror.InvalidInput, "a sale requires at least one item")
	}

	// 1. Resolve customer: id wins over free-text name; a walk-in buyer with
	// neither gets the fixed placeholder label.
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

	// 2. Resolve all referenced products in one batch lookup.
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
	for _, pid := range ids {
		if _, ok := byID[pid]; !ok {
			return nil, apperror.New(apperror.InvalidInput, "one or more products do not exist")
		}
	}

	// 3. Availability checks in input order — stop at the first failure —
	// and price capture. Explicit unit price wins over the catalog price.
	// Quantities accumulate per product so that two lines of the same product
	// are checked against the combined demand; otherwise each line would pass
	// alone and the decrement would only fail inside the transaction, as an
	// opaque conflict instead of a structured stock error.
	type resolvedItem struct {
		product   *model.Product
		quantity  int
		unitPrice decimal.Decimal
	}
	resolved := make([]resolvedItem, 0, len(req.Items))
	demanded := make(map[uuid.UUID]int, len(req.Items))
	total := decimal.Zero
	for i, item := range req.Items {
		p := byID[ids[i]]
		demanded[p.ID] += item.Quantity
		if err := s.inventory.CheckAvailability(p, demanded[p.ID]); err != nil {
			return nil, err
		}
		price := p.Price
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		resolved = append(resolved, resolvedItem{product: p, quantity: item.Quantity, unitPrice: price})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	// 4. ACID block: sale + items + stock decrements commit together.
	sale := model.Sale{
		CustomerID:    customerID,
		CustomerName:  customerName,
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
		Total:         total,
	}
	for _, r := range resolved {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID: r.product.ID,
			Quantity:  r.quantity,
			UnitPrice: r.unitPrice,
		})
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(ctx, tx, &sale); err != nil {
			return err
		}
		for _, r := range resolved {
			reason := fmt.Sprintf("sale %s", sale.ID)
			if err := s.inventory.DecrementTx(ctx, tx, r.product, r.quantity, model.MovementSale, reason, &sale.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Response enrichment only — none of this is persisted on the sale.
	resp := s.saleToResponse(&sale)
	resp.SellerName = s.resolveUserName(ctx, userID)
	for i, r := range resolved {
		resp.Items[i].ProductName = r.product.Name
		resp.Items[i].Description = r.product.Description
	}
	return resp, nil
}

// ── Delete ────────────────────────────────────────────────────────────────────

func (s *saleService) Delete(ctx context.Context, id uuid.UUID) error {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return apperror.Newf(apperror.NotFound, "sale %s not found", id)
	}

	// Restore stock for every item, then remove items and sale — one TX.
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		for _, item := range sale.Items {
			product, err := s.productRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				return fmt.Errorf("resolve product %s: %w", item.ProductID, err)
			}
			reason := fmt.Sprintf("reversal of sale %s", sale.ID)
			if err := s.inventory.IncrementTx(ctx, tx, product, item.Quantity, model.MovementSaleReversal, reason, &sale.ID); err != nil {
				return err
			}
		}
		return s.repo.DeleteTx(ctx, tx, sale.ID)
	})
}

// ── Update ────────────────────────────────────────────────────────────────────
// Only customer reference/name and payment method are mutable. The item set is
// a frozen record of what was sold and at what price; changing it after the
// fact would desynchronize inventory already committed.

func (s *saleService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if len(req.RawItems) > 0 {
		return nil, apperror.New(apperror.InvalidInput, "sale items are immutable after creation")
	}

	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "sale %s not found", id)
	}

	if req.PaymentMethod != nil {
		sale.PaymentMethod = *req.PaymentMethod
	}
	if req.CustomerID != nil {
		cid, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			return nil, apperror.Newf(apperror.InvalidInput, "invalid customer_id: %s", *req.CustomerID)
		}
		customer, err := s.customerRepo.FindByID(ctx, cid)
		if err != nil {
			return nil, apperror.Newf(apperror.NotFound, "customer %s not found", cid)
		}
		sale.CustomerID = &customer.ID
		sale.CustomerName = customer.Name
	} else if req.CustomerName != nil && *req.CustomerName != "" {
		sale.CustomerID = nil
		sale.CustomerName = *req.CustomerName
	}

	if err := s.repo.Update(ctx, sale); err != nil {
		return nil, err
	}

	resp := s.saleToResponse(sale)
	resp.SellerName = s.resolveUserName(ctx, sale.UserID)
	return resp, nil
}

// ── Reads ─────────────────────────────────────────────────────────────────────

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "sale %s not found", id)
	}
	resp := s.saleToResponse(sale)
	if sale.User != nil {
		resp.SellerName = sale.User.Name
	}
	return resp, nil
}

func (s *saleService) List(ctx context.Context, filter dto.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		resp := s.saleToResponse(&sales[i])
		if sales[i].User != nil {
			resp.SellerName = sales[i].User.Name
		}
		items = append(items, *resp)
	}
	return &dto.SaleListResponse{Data: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (s *saleService) resolveUserName(ctx context.Context, id uuid.UUID) string {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return ""
	}
	return user.Name
}

func (s *saleService) saleToResponse(sale *model.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		r := dto.SaleItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if item.Product != nil {
			r.ProductName = item.Product.Name
			r.Description = item.Product.Description
		}
		items = append(items, r)
	}
	resp := &dto.SaleResponse{
		ID:            sale.ID.String(),
		CustomerName:  sale.CustomerName,
		PaymentMethod: sale.PaymentMethod,
		Items:         items,
		Total:         sale.Total,
		CreatedAt:     sale.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if sale.CustomerID != nil {
		cid := sale.CustomerID.String()
		resp.CustomerID = &cid
	}
	return resp
}
