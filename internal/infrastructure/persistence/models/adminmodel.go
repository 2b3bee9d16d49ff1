package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminModel is the GORM model for the admins table
type AdminModel struct {
	ID           uint                        `gorm:"primaryKey;autoIncrement"`
	Username     string                      `gorm:"column:username;size:50;not null;uniqueIndex"`
	PasswordHash string                      `gorm:"column:password_hash;size:255;not null"`
	FullName     *string                     `gorm:"column:full_name;size:255"`
	Email        *string                     `gorm:"column:email;size:255"`
	Role         string                      `gorm:"column:role;size:20;not null"`
	Permissions  datatypes.JSONSlice[string] `gorm:"column:permissions"`
	IsActive     bool                        `gorm:"column:is_active;not null"`
	LastLogin    *time.Time                  `gorm:"column:last_login"`
	CreatedAt    time.Time                   `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (AdminModel) TableName() string {
	return "admins"
}
