package dto

import "github.com/shopspring/decimal"

type CreateRepairOrderRequest struct {
	CustomerID    string  `json:"customer_id"    validate:"required,uuid"`
	Device        string  `json:"device"         validate:"required,min=2,max=150"`
	SerialNumber  *string `json:"serial_number"  validate:"omitempty,max=100"`
	ReportedIssue string  `json:"reported_issue" validate:"required,min=5,max=500"`
	TechnicianID  *string `json:"technician_id"  validate:"omitempty,uuid"`
}

type UpdateRepairOrderRequest struct {
	Diagnosis     *string          `json:"diagnosis"      validate:"omitempty,max=500"`
	TechnicianID  *string          `json:"technician_id"  validate:"omitempty,uuid"`
	EstimatedCost *decimal.Decimal `json:"estimated_cost" validate:"omitempty,min=0"`
}

type UpdateRepairStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=RECEIVED DIAGNOSED IN_REPAIR READY DELIVERED CANCELLED"`
}

type RepairOrderResponse struct {
	ID             string           `json:"id"`
	CustomerID     string           `json:"customer_id"`
	CustomerName   string           `json:"customer_name"`
	TechnicianID   *string          `json:"technician_id,omitempty"`
	TechnicianName *string          `json:"technician_name,omitempty"`
	Device         string           `json:"device"`
	SerialNumber   *string          `json:"serial_number,omitempty"`
	ReportedIssue  string           `json:"reported_issue"`
	Diagnosis      *string          `json:"diagnosis,omitempty"`
	Status         string           `json:"status"`
	EstimatedCost  *decimal.Decimal `json:"estimated_cost,omitempty"`
	DeliveredAt    *string          `json:"delivered_at,omitempty"`
	CreatedAt      string           `json:"created_at"`
}

type RepairListResponse struct {
	Data  []RepairOrderResponse `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

type RepairFilter struct {
	Status       string `form:"status"`
	TechnicianID string `form:"technician_id"`
	Page         int    `form:"page,default=1"   validate:"min=1"`
	Limit        int    `form:"limit,default=50" validate:"min=1,max=200"`
}
