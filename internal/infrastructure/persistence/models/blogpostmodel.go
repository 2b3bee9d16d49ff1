package models

import (
	"time"

	"gorm.io/datatypes"
)

// BlogPostModel is the GORM model for the blog_posts table
type BlogPostModel struct {
	ID          uint                        `gorm:"primaryKey;autoIncrement"`
	Title       string                      `gorm:"column:title;size:255;not null"`
	Slug        string                      `gorm:"column:slug;size:255;not null;uniqueIndex"`
	Excerpt     string                      `gorm:"column:excerpt;type:text;not null"`
	Content     string                      `gorm:"column:content;type:text;not null"`
	ContentHTML string                      `gorm:"column:content_html;type:text"`
	CoverImage  *string                     `gorm:"column:cover_image;type:text"`
	Tags        datatypes.JSONSlice[string] `gorm:"column:tags"`
	Category    string                      `gorm:"column:category;size:50;not null;index"`
	ReadTime    int                         `gorm:"column:read_time;not null"`
	Views       int64                       `gorm:"column:views;not null"`
	Status      string                      `gorm:"column:status;size:20;not null;index"`
	Featured    bool                        `gorm:"column:featured;not null"`
	AuthorName  string                      `gorm:"column:author_name;size:100;not null"`
	PublishedAt *time.Time                  `gorm:"column:published_at"`
	CreatedAt   time.Time                   `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt   time.Time                   `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}
