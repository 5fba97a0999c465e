package service

import (
	"context"
	"strings"

	"github.com/spimentel1201/RepairServiceAPI/internal/apperror"
	"github.com/spimentel1201/RepairServiceAPI/internal/dto"
	"github.com/spimentel1201/RepairServiceAPI/internal/model"
	"github.com/spimentel1201/RepairServiceAPI/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the fixed IGV rate applied to sales. Persisted totals are
// tax-INCLUSIVE: the invoice derives subtotal = total / (1 + rate) and
// tax = total - subtotal by division at read time. There is no stored tax
// column anywhere; this assumption must hold for every sale.
var TaxRate = decimal.NewFromFloat(0.18)

// InvoiceService derives read-only invoices from persisted sales. It never
// mutates state; calling it twice on the same sale yields identical output.
type InvoiceService interface {
	Get(ctx context.Context, saleID uuid.UUID) (*dto.InvoiceResponse, error)
}

type invoiceService struct {
	saleRepo repository.SaleRepository
}

func NewInvoiceService(saleRepo repository.SaleRepository) InvoiceService {
	return &invoiceService{saleRepo: saleRepo}
}

func (s *invoiceService) Get(ctx context.Context, saleID uuid.UUID) (*dto.InvoiceResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, apperror.Newf(apperror.NotFound, "sale %s not found", saleID)
	}
	return BuildInvoice(sale), nil
}

// BuildInvoice is the pure derivation; exported so the PDF renderer and the
// mailer reuse the exact same numbers the JSON endpoint serves.
func BuildInvoice(sale *model.Sale) *dto.InvoiceResponse {
	one := decimal.NewFromInt(1)
	subtotal := sale.Total.Div(one.Add(TaxRate)).Round(2)
	tax := sale.Total.Sub(subtotal)

	lines := make([]dto.InvoiceLine, 0, len(sale.Items))
	for _, item := range sale.Items {
		line := dto.InvoiceLine{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.Description = item.Product.Description
		}
		lines = append(lines, line)
	}

	sellerName := ""
	if sale.User != nil {
		sellerName = sale.User.Name
	}

	return &dto.InvoiceResponse{
		InvoiceNumber: InvoiceNumber(sale),
		SaleID:        sale.ID.String(),
		CustomerName:  sale.CustomerName,
		SellerName:    sellerName,
		PaymentMethod: sale.PaymentMethod,
		IssuedAt:      sale.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Lines:         lines,
		Subtotal:      subtotal,
		Tax:           tax,
		TaxRate:       TaxRate,
		Total:         sale.Total,
	}
}

// InvoiceNumber derives the stable display number of a sale: the creation
// date (YYYYMMDD) concatenated with the first 8 chars of the sale id,
// prefixed INV-. Deterministic: repeated calls on the same sale always agree.
func InvoiceNumber(sale *model.Sale) string {
	var b strings.Builder
	b.WriteString("INV-")
	b.WriteString(sale.CreatedAt.Format("20060102"))
	b.WriteString(sale.ID.String()[:8])
	return b.String()
}
