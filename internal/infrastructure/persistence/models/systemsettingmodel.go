package models

import (
	"time"
)

// SystemSettingModel is the GORM model for system_settings table
type SystemSettingModel struct {
	SettingKey  string    `gorm:"column:key;primaryKey;size:100"`
	Value       string    `gorm:"column:value;type:text;not null"`
	Description *string   `gorm:"column:description;type:text"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SystemSettingModel) TableName() string {
	return "system_settings"
}
