package service_test

import (
	"context"
	"testing"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildQuoteSvc() (service.QuoteService, *stubQuoteRepo, *stubProductRepo, *stubCustomerRepo) {
	quoteRepo := newStubQuoteRepo()
	productRepo := newStubProductRepo()
	customerRepo := newStubCustomerRepo()
	return service.NewQuoteService(quoteRepo, productRepo, customerRepo), quoteRepo, productRepo, customerRepo
}

func TestCreateQuote_NoStockEffect(t *testing.T) {
	svc, quoteRepo, productRepo, _ := buildQuoteSvc()
	p := seedProduct(productRepo, "LCD screen iPhone 12", 120.00, 5, 1)

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items:     []dto.QuoteItemRequest{{ProductID: p.ID.String(), Quantity: 3}},
		ValidDays: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, model.QuotePending, resp.Status)
	assert.True(t, decimal.NewFromFloat(360.00).Equal(resp.Total))
	require.NotNil(t, resp.ValidUntil)

	// Quoting reserves nothing
	assert.Equal(t, 5, productRepo.products[p.ID].Stock)
	assert.Len(t, quoteRepo.quotes, 1)
}

func TestCreateQuote_EmptyItems(t *testing.T) {
	svc, _, _, _ := buildQuoteSvc()

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
}

func TestCreateQuote_PriceCapture(t *testing.T) {
	svc, quoteRepo, productRepo, _ := buildQuoteSvc()
	p := seedProduct(productRepo, "Battery Samsung A51", 45.00, 10, 2)

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items: []dto.QuoteItemRequest{{ProductID: p.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)

	// A later catalog price change does not touch the quoted price
	p.Price = decimal.NewFromFloat(60.00)
	stored, _ := quoteRepo.FindByID(context.Background(), uuid.MustParse(resp.ID))
	assert.True(t, decimal.NewFromFloat(45.00).Equal(stored.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromFloat(90.00).Equal(stored.Total))
}

func TestUpdateQuoteStatus(t *testing.T) {
	svc, _, productRepo, _ := buildQuoteSvc()
	p := seedProduct(productRepo, "Tempered glass", 5.00, 50, 5)

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items: []dto.QuoteItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), uuid.MustParse(resp.ID), model.QuoteAccepted)
	require.NoError(t, err)
	assert.Equal(t, model.QuoteAccepted, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), uuid.MustParse(resp.ID), "APPROVED")
	require.Error(t, err)
	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
}

func TestDeleteQuote(t *testing.T) {
	svc, quoteRepo, productRepo, _ := buildQuoteSvc()
	p := seedProduct(productRepo, "Phone case", 8.00, 15, 3)

	resp, err := svc.Create(context.Background(), uuid.New(), dto.CreateQuoteRequest{
		Items: []dto.QuoteItemRequest{{ProductID: p.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), uuid.MustParse(resp.ID)))
	assert.Empty(t, quoteRepo.quotes)
	// Deleting a quote never moves stock
	assert.Equal(t, 15, productRepo.products[p.ID].Stock)

	err = svc.Delete(context.Background(), uuid.MustParse(resp.ID))
	require.Error(t, err)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
