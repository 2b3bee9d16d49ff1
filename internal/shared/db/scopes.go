// Package db provides database utilities including transaction management and query scopes.
package db

import (
	"strings"

	"gorm.io/gorm"
)

// Paginate applies LIMIT/OFFSET. A non-positive limit leaves the query unbounded.
func Paginate(limit, offset int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

// Newest orders by column descending with id as a tie breaker so repeated queries
// return rows in a stable order.
func Newest(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " DESC").Order("id DESC")
	}
}

// Oldest is the ascending counterpart of Newest.
func Oldest(column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(column + " ASC").Order("id ASC")
	}
}

// EqualIfSet adds "column = value" only when value is non-nil.
func EqualIfSet[T any](column string, value *T) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if value == nil {
			return db
		}
		return db.Where(column+" = ?", *value)
	}
}

// LikePattern builds a %term% pattern, escaping LIKE wildcards in the term with '!'.
// Use it together with Like so the ESCAPE clause matches on every dialect.
func LikePattern(term string) string {
	escaped := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(term)
	return "%" + escaped + "%"
}

// Like returns "expr LIKE ? ESCAPE '!'".
func Like(expr string) string {
	return expr + " LIKE ? ESCAPE '!'"
}
