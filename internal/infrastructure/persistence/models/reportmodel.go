package models

import (
	"time"
)

// ReportModel is the GORM model for the reports table
type ReportModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	AccusedName   string     `gorm:"column:accused_name;size:255;not null"`
	PhoneNumber   string     `gorm:"column:phone_number;size:20;not null;index"`
	AccountNumber *string    `gorm:"column:account_number;size:50;index"`
	Bank          *string    `gorm:"column:bank;size:100"`
	Amount        int64      `gorm:"column:amount;not null"`
	Description   string     `gorm:"column:description;type:text;not null"`
	IsAnonymous   bool       `gorm:"column:is_anonymous;not null"`
	ReporterName  *string    `gorm:"column:reporter_name;size:255"`
	ReporterPhone *string    `gorm:"column:reporter_phone;size:20"`
	ReceiptURL    *string    `gorm:"column:receipt_url;type:text"`
	Status        string     `gorm:"column:status;size:20;not null;index"`
	Priority      string     `gorm:"column:priority;size:20;not null;index"`
	Category      string     `gorm:"column:category;size:50;not null;index"`
	IsPublic      bool       `gorm:"column:is_public;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
	VerifiedAt    *time.Time `gorm:"column:verified_at"`
	VerifiedBy    *string    `gorm:"column:verified_by;size:100"`
}

// TableName returns the table name for GORM
func (ReportModel) TableName() string {
	return "reports"
}

