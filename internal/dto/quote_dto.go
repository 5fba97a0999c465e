package dto

import "github.com/shopspring/decimal"

type QuoteItemRequest struct {
	ProductID string           `json:"product_id" validate:"required,uuid"`
	Quantity  int              `json:"quantity"   validate:"required,min=1"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"omitempty"`
}

type CreateQuoteRequest struct {
	Items        []QuoteItemRequest `json:"items"         validate:"required,min=1,dive"`
	CustomerID   *string            `json:"customer_id"   validate:"omitempty,uuid"`
	CustomerName *string            `json:"customer_name" validate:"omitempty,min=2,max=150"`
	ValidDays    int                `json:"valid_days"    validate:"omitempty,min=1,max=90"`
	Notes        *string            `json:"notes"         validate:"omitempty,max=500"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING ACCEPTED REJECTED EXPIRED"`
}

type QuoteItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type QuoteResponse struct {
	ID           string              `json:"id"`
	CustomerID   *string             `json:"customer_id,omitempty"`
	CustomerName string              `json:"customer_name"`
	Status       string              `json:"status"`
	Items        []QuoteItemResponse `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	ValidUntil   *string             `json:"valid_until,omitempty"`
	Notes        *string             `json:"notes,omitempty"`
	CreatedAt    string              `json:"created_at"`
}

type QuoteListResponse struct {
	Data  []QuoteResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type QuoteFilter struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}
