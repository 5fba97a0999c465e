package service_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubProductRepo is an in-memory ProductRepository for testing.
type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
	// failDecrement simulates a concurrent sale winning the race between the
	// pre-flight availability check and the conditional UPDATE.
	failDecrement map[uuid.UUID]bool
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:      make(map[uuid.UUID]*model.Product),
		failDecrement: make(map[uuid.UUID]bool),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]model.Product, error) {
	out := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubProductRepo) List(_ context.Context, _ dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Active && p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	p.Active = false
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	p.Active = true
	return nil
}

func (r *stubProductRepo) DecrementStockTx(_ context.Context, _ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok || r.failDecrement[id] || p.Stock < qty {
		return repository.ErrStockConflict
	}
	p.Stock -= qty
	return nil
}

func (r *stubProductRepo) IncrementStockTx(_ context.Context, _ *gorm.DB, id uuid.UUID, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("not found")
	}
	p.Stock += qty
	return nil
}

func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// stubSaleRepo is an in-memory SaleRepository for testing.
type stubSaleRepo struct {
	sales map[uuid.UUID]*model.Sale
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uuid.UUID]*model.Sale)}
}

func (r *stubSaleRepo) CreateTx(_ context.Context, _ *gorm.DB, s *model.Sale) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.CreatedAt = time.Now()
	for i := range s.Items {
		if s.Items[i].ID == uuid.Nil {
			s.Items[i].ID = uuid.New()
		}
		s.Items[i].SaleID = s.ID
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubSaleRepo) Update(_ context.Context, s *model.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return errors.New("not found")
	}
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) DeleteTx(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	if _, ok := r.sales[id]; !ok {
		return errors.New("not found")
	}
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) List(_ context.Context, _ dto.SaleFilter) ([]model.Sale, int64, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// stubMovementRepo captures movement rows for assertion.
type stubMovementRepo struct {
	movements []model.StockMovement
}

func (r *stubMovementRepo) CreateTx(_ context.Context, _ *gorm.DB, m *model.StockMovement) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	var out []model.StockMovement
	for _, m := range r.movements {
		if filter.ProductID != "" && m.ProductID.String() != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

// stubCustomerRepo is an in-memory CustomerRepository for testing.
type stubCustomerRepo struct {
	customers map[uuid.UUID]*model.Customer
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uuid.UUID]*model.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *model.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubCustomerRepo) FindByDocument(_ context.Context, documentID string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.DocumentID == documentID {
			return c, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubCustomerRepo) List(_ context.Context, _ dto.CustomerFilter) ([]model.Customer, int64, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *stubCustomerRepo) Update(_ context.Context, c *model.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	c, ok := r.customers[id]
	if !ok {
		return errors.New("not found")
	}
	c.Active = false
	return nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

// stubUserRepo is an in-memory UserRepository for testing.
type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email && u.Active {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUserRepo) List(_ context.Context, includeInactive bool) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active || includeInactive {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("not found")
	}
	u.Active = active
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// stubRepairRepo is an in-memory RepairOrderRepository for testing.
type stubRepairRepo struct {
	orders map[uuid.UUID]*model.RepairOrder
}

func newStubRepairRepo() *stubRepairRepo {
	return &stubRepairRepo{orders: make(map[uuid.UUID]*model.RepairOrder)}
}

func (r *stubRepairRepo) Create(_ context.Context, o *model.RepairOrder) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	o.CreatedAt = time.Now()
	r.orders[o.ID] = o
	return nil
}

func (r *stubRepairRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RepairOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return o, nil
}

func (r *stubRepairRepo) List(_ context.Context, _ dto.RepairFilter) ([]model.RepairOrder, int64, error) {
	out := make([]model.RepairOrder, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubRepairRepo) Update(_ context.Context, o *model.RepairOrder) error {
	if _, ok := r.orders[o.ID]; !ok {
		return errors.New("not found")
	}
	r.orders[o.ID] = o
	return nil
}

var _ repository.RepairOrderRepository = (*stubRepairRepo)(nil)

// stubQuoteRepo is an in-memory QuoteRepository for testing.
type stubQuoteRepo struct {
	quotes map[uuid.UUID]*model.Quote
}

func newStubQuoteRepo() *stubQuoteRepo {
	return &stubQuoteRepo{quotes: make(map[uuid.UUID]*model.Quote)}
}

func (r *stubQuoteRepo) Create(_ context.Context, q *model.Quote) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	q.CreatedAt = time.Now()
	r.quotes[q.ID] = q
	return nil
}

func (r *stubQuoteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Quote, error) {
	q, ok := r.quotes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return q, nil
}

func (r *stubQuoteRepo) List(_ context.Context, _ dto.QuoteFilter) ([]model.Quote, int64, error) {
	out := make([]model.Quote, 0, len(r.quotes))
	for _, q := range r.quotes {
		out = append(out, *q)
	}
	return out, int64(len(out)), nil
}

func (r *stubQuoteRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	q, ok := r.quotes[id]
	if !ok {
		return errors.New("not found")
	}
	q.Status = status
	return nil
}

func (r *stubQuoteRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.quotes[id]; !ok {
		return errors.New("not found")
	}
	delete(r.quotes, id)
	return nil
}

var _ repository.QuoteRepository = (*stubQuoteRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name string, price float64, stock, minStock int) *model.Product {
	p := &model.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: "spare parts",
		Price:    decimal.NewFromFloat(price),
		Cost:     decimal.NewFromFloat(price / 2),
		Stock:    stock,
		MinStock: minStock,
		Active:   true,
	}
	repo.products[p.ID] = p
	return p
}

func seedCustomer(repo *stubCustomerRepo, name, document string) *model.Customer {
	c := &model.Customer{
		ID:         uuid.New(),
		Name:       name,
		DocumentID: document,
		Active:     true,
	}
	repo.customers[c.ID] = c
	return c
}

func seedUser(repo *stubUserRepo, name, role string) *model.User {
	u := &model.User{
		ID:     uuid.New(),
		Email:  strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@shop.local",
		Name:   name,
		Role:   role,
		Active: true,
	}
	repo.users[u.ID] = u
	return u
}
