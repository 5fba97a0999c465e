package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProductFilter is bound from the query string of GET /v1/products.
type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Active   string `form:"active"` // "false" = inactive, "all" = everything, default active only
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=150"`
	Description *string         `json:"description" validate:"omitempty,max=500"`
	Category    string          `json:"category"    validate:"required,min=2,max=100"`
	Price       decimal.Decimal `json:"price"       validate:"required,gt=0"`
	Cost        decimal.Decimal `json:"cost"        validate:"required,min=0"`
	Stock       int             `json:"stock"       validate:"min=0"`
	MinStock    int             `json:"min_stock"   validate:"min=0"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=150"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
	Category    *string          `json:"category"    validate:"omitempty,min=2,max=100"`
	Price       *decimal.Decimal `json:"price"       validate:"omitempty,gt=0"`
	Cost        *decimal.Decimal `json:"cost"        validate:"omitempty,min=0"`
	MinStock    *int             `json:"min_stock"   validate:"omitempty,min=0"`
}

// AdjustStockRequest applies a signed delta to a product's stock counter.
type AdjustStockRequest struct {
	Delta  int    `json:"delta"  validate:"required"`
	Reason string `json:"reason" validate:"required,min=3,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
}

// LowStockItem is one row of the low-stock report.
type LowStockItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
}

// ImportResult summarizes a CSV catalog import.
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
