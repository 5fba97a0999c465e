package model

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a registered client of the shop. DocumentID holds the national
// identity or tax number (DNI/RUC) and is unique among active customers.
type Customer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"index;not null"`
	DocumentID string    `gorm:"uniqueIndex;not null"`
	Phone      *string
	Email      *string
	Address    *string
	Active     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
