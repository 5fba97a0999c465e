package dto

// ─── Filter / List ──────────────────────────────────────────────────────────

type CustomerFilter struct {
	Search string `form:"search"` // matches name or document
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type CustomerListResponse struct {
	Data  []CustomerResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCustomerRequest struct {
	Name       string  `json:"name"        validate:"required,min=2,max=150"`
	DocumentID string  `json:"document_id" validate:"required,min=6,max=20"`
	Phone      *string `json:"phone"       validate:"omitempty,max=20"`
	Email      *string `json:"email"       validate:"omitempty,email"`
	Address    *string `json:"address"     validate:"omitempty,max=250"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=2,max=150"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Address *string `json:"address" validate:"omitempty,max=250"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DocumentID string  `json:"document_id"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	Active     bool    `json:"active"`
	CreatedAt  string  `json:"created_at"`
}
