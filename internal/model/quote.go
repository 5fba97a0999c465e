package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuotePending  = "PENDING"
	QuoteAccepted = "ACCEPTED"
	QuoteRejected = "REJECTED"
	QuoteExpired  = "EXPIRED"
)

// Quote is a non-binding price estimate. Unit prices are captured at quote
// time, like sale items, but a quote never touches inventory.
type Quote struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string     `gorm:"not null"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValidUntil   *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Items    []QuoteItem `gorm:"foreignKey:QuoteID"`
	Customer *Customer   `gorm:"foreignKey:CustomerID"`
}

type QuoteItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuoteID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// ValidQuoteStatus reports whether s is one of the accepted enum values.
func ValidQuoteStatus(s string) bool {
	switch s {
	case QuotePending, QuoteAccepted, QuoteRejected, QuoteExpired:
		return true
	}
	return false
}
