package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment methods accepted at the counter.
const (
	PaymentCash       = "CASH"
	PaymentCreditCard = "CREDIT_CARD"
	PaymentDebitCard  = "DEBIT_CARD"
	PaymentTransfer   = "TRANSFER"
	PaymentYape       = "YAPE"
	PaymentPlin       = "PLIN"
)

// WalkInCustomerLabel is stored when a sale carries neither a customer
// reference nor a free-text name.
const WalkInCustomerLabel = "unregistered customer"

// Sale is a completed point-of-sale transaction. Total is derived at
// creation time (sum of quantity × unit price across items) and persisted.
// The item set is frozen once the sale exists; only the customer reference
// and the payment method may change afterwards.
type Sale struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName  string     `gorm:"not null"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	PaymentMethod string     `gorm:"type:varchar(20);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items    []SaleItem `gorm:"foreignKey:SaleID"`
	Customer *Customer  `gorm:"foreignKey:CustomerID"`
	User     *User      `gorm:"foreignKey:UserID"`
}

// SaleItem binds a product, a quantity, and the unit price captured at sale
// time. Later catalog price changes do not affect persisted items.
type SaleItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SaleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

// ValidPaymentMethod reports whether m is one of the accepted enum values.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentTransfer, PaymentYape, PaymentPlin:
		return true
	}
	return false
}
