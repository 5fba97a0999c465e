package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repair order statuses. Orders advance strictly forward through the chain
// RECEIVED → DIAGNOSED → IN_REPAIR → READY → DELIVERED; CANCELLED is reachable
// from any non-terminal state.
const (
	RepairReceived  = "RECEIVED"
	RepairDiagnosed = "DIAGNOSED"
	RepairInRepair  = "IN_REPAIR"
	RepairReady     = "READY"
	RepairDelivered = "DELIVERED"
	RepairCancelled = "CANCELLED"
)

// RepairOrder tracks a device brought in for service.
type RepairOrder struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TechnicianID  *uuid.UUID `gorm:"type:uuid;index"`
	Device        string     `gorm:"not null"`
	SerialNumber  *string
	ReportedIssue string `gorm:"not null"`
	Diagnosis     *string
	Status        string           `gorm:"type:varchar(20);not null;default:'RECEIVED'"`
	EstimatedCost *decimal.Decimal `gorm:"type:decimal(10,2)"`
	DeliveredAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Customer   *Customer `gorm:"foreignKey:CustomerID"`
	Technician *User     `gorm:"foreignKey:TechnicianID"`
}

var repairTransitions = map[string]string{
	RepairReceived:  RepairDiagnosed,
	RepairDiagnosed: RepairInRepair,
	RepairInRepair:  RepairReady,
	RepairReady:     RepairDelivered,
}

// CanTransition reports whether a repair order may move from one status to
// another. Cancellation is allowed from any state except the terminal ones.
func CanTransition(from, to string) bool {
	if to == RepairCancelled {
		return from != RepairDelivered && from != RepairCancelled
	}
	return repairTransitions[from] == to
}
