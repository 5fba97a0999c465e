package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles recognized by the authorization middleware.
const (
	RoleAdmin      = "admin"
	RoleSeller     = "seller"
	RoleTechnician = "technician"
)

// User stores system users with role-based access.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
