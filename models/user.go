package models

import (
	"time"
)

// User is a staff account. Only staff manage registries and review
// inspections; drivers never log in, they use the tokenized public link.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	Role      string    `json:"role" gorm:"not null;size:20;default:'staff'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)
