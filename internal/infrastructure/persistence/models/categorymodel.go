package models

import (
	"time"
)

// ReportCategoryModel is the GORM model for the report_categories table
type ReportCategoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;size:100;not null;uniqueIndex"`
	Description *string   `gorm:"column:description;type:text"`
	Color       string    `gorm:"column:color;size:20;not null"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (ReportCategoryModel) TableName() string {
	return "report_categories"
}

// BlogCategoryModel is the GORM model for the blog_categories table
type BlogCategoryModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;size:100;not null;uniqueIndex"`
	Slug        string    `gorm:"column:slug;size:100;not null;uniqueIndex"`
	Description *string   `gorm:"column:description;type:text"`
	Color       string    `gorm:"column:color;size:20;not null"`
	IsActive    bool      `gorm:"column:is_active;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName returns the table name for GORM
func (BlogCategoryModel) TableName() string {
	return "blog_categories"
}
