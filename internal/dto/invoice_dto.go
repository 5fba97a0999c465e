package dto

import "github.com/shopspring/decimal"

// InvoiceLine is one printable row of an invoice, derived from a sale item.
type InvoiceLine struct {
	ProductName string          `json:"product_name"`
	Description *string         `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse is the read-only financial summary of a sale. Subtotal and
// tax are derived from the tax-inclusive total at read time; they are never
// stored.
type InvoiceResponse struct {
	InvoiceNumber string          `json:"invoice_number"`
	SaleID        string          `json:"sale_id"`
	CustomerName  string          `json:"customer_name"`
	SellerName    string          `json:"seller_name"`
	PaymentMethod string          `json:"payment_method"`
	IssuedAt      string          `json:"issued_at"`
	Lines         []InvoiceLine   `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	Total         decimal.Decimal `json:"total"`
}

type EmailInvoiceRequest struct {
	To string `json:"to" validate:"required,email"`
}
