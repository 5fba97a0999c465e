package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInvoice_TaxBreakdown(t *testing.T) {
	// total 118.00 with 18% inclusive tax → subtotal 100.00, tax 18.00
	sale := &model.Sale{
		ID:            uuid.New(),
		CustomerName:  "Luis Paredes",
		PaymentMethod: model.PaymentCash,
		Total:         decimal.NewFromFloat(118.00),
		CreatedAt:     time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	inv := service.BuildInvoice(sale)
	assert.Equal(t, "100", inv.Subtotal.String())
	assert.Equal(t, "18", inv.Tax.String())
	assert.True(t, inv.Subtotal.Add(inv.Tax).Equal(inv.Total))
	assert.True(t, service.TaxRate.Equal(inv.TaxRate))
}

func TestBuildInvoice_RoundingNonExactTotal(t *testing.T) {
	// 100.00 / 1.18 = 84.7457... → 84.75; tax = difference, so the parts
	// always sum back to the stored total exactly.
	sale := &model.Sale{
		ID:        uuid.New(),
		Total:     decimal.NewFromFloat(100.00),
		CreatedAt: time.Now(),
	}

	inv := service.BuildInvoice(sale)
	assert.Equal(t, "84.75", inv.Subtotal.String())
	assert.Equal(t, "15.25", inv.Tax.String())
	assert.True(t, inv.Subtotal.Add(inv.Tax).Equal(sale.Total))
}

func TestBuildInvoice_Idempotent(t *testing.T) {
	sale := &model.Sale{
		ID:        uuid.New(),
		Total:     decimal.NewFromFloat(59.90),
		CreatedAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		Items: []model.SaleItem{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromFloat(29.95)},
		},
	}

	first := service.BuildInvoice(sale)
	second := service.BuildInvoice(sale)
	assert.Equal(t, first.InvoiceNumber, second.InvoiceNumber)
	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.Equal(t, len(first.Lines), len(second.Lines))
}

func TestInvoiceNumber_Format(t *testing.T) {
	sale := &model.Sale{
		ID:        uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000000"),
		CreatedAt: time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, "INV-20260315a1b2c3d4", service.InvoiceNumber(sale))
}

func TestBuildInvoice_LinesFromItems(t *testing.T) {
	screen := &model.Product{ID: uuid.New(), Name: "LCD screen iPhone 12"}
	sale := &model.Sale{
		ID:        uuid.New(),
		Total:     decimal.NewFromFloat(240.00),
		CreatedAt: time.Now(),
		Items: []model.SaleItem{
			{ProductID: screen.ID, Quantity: 2, UnitPrice: decimal.NewFromFloat(120.00), Product: screen},
		},
	}

	inv := service.BuildInvoice(sale)
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "LCD screen iPhone 12", inv.Lines[0].ProductName)
	assert.Equal(t, 2, inv.Lines[0].Quantity)
	assert.True(t, decimal.NewFromFloat(240.00).Equal(inv.Lines[0].LineTotal))
}

func TestInvoiceService_Get(t *testing.T) {
	saleRepo := newStubSaleRepo()
	svc := service.NewInvoiceService(saleRepo)

	sale := &model.Sale{
		CustomerName:  model.WalkInCustomerLabel,
		PaymentMethod: model.PaymentCash,
		Total:         decimal.NewFromFloat(118.00),
	}
	require.NoError(t, saleRepo.CreateTx(context.Background(), nil, sale))

	inv, err := svc.Get(context.Background(), sale.ID)
	require.NoError(t, err)
	assert.Equal(t, sale.ID.String(), inv.SaleID)
	assert.Equal(t, fmt.Sprintf("INV-%s%s", sale.CreatedAt.Format("20060102"), sale.ID.String()[:8]), inv.InvoiceNumber)
}

func TestInvoiceService_Get_NotFound(t *testing.T) {
	svc := service.NewInvoiceService(newStubSaleRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
