package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// SaleFilter is bound from the query string of GET /v1/sales.
type SaleFilter struct {
	Date          string `form:"date"` // YYYY-MM-DD; empty = all
	PaymentMethod string `form:"payment_method"`
	Page          int    `form:"page,default=1"   validate:"min=1"`
	Limit         int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"   validate:"required,min=1"`
	// UnitPrice overrides the catalog price when present (negotiated price).
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty"`
}

type CreateSaleRequest struct {
	Items         []SaleItemRequest `json:"items"          validate:"required,dive"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=CASH CREDIT_CARD DEBIT_CARD TRANSFER YAPE PLIN"`
	CustomerID    *string           `json:"customer_id"    validate:"omitempty,uuid"`
	CustomerName  *string           `json:"customer_name"  validate:"omitempty,min=2,max=150"`
}

// UpdateSaleRequest patches post-creation metadata. Items are deliberately
// absent from the bindable fields; RawItems catches any attempt to send them
// so the service can reject it instead of silently ignoring it.
type UpdateSaleRequest struct {
	PaymentMethod *string `json:"payment_method" validate:"omitempty,oneof=CASH CREDIT_CARD DEBIT_CARD TRANSFER YAPE PLIN"`
	CustomerID    *string `json:"customer_id"    validate:"omitempty,uuid"`
	CustomerName  *string `json:"customer_name"  validate:"omitempty,min=2,max=150"`
	RawItems      []SaleItemRequest `json:"items" validate:"omitempty"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description *string         `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	CustomerID    *string            `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	SellerName    string             `json:"seller_name"`
	PaymentMethod string             `json:"payment_method"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     string             `json:"created_at"`
}
