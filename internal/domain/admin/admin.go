// Package admin models back-office accounts.
package admin

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

type Admin struct {
	ID           uint                    `json:"id"`
	Username     string                  `json:"username"`
	PasswordHash string                  `json:"-"`
	FullName     *string                 `json:"fullName"`
	Email        *string                 `json:"email"`
	Role         authorization.AdminRole `json:"role"`
	Permissions  []string                `json:"permissions"`
	IsActive     bool                    `json:"isActive"`
	LastLogin    *time.Time              `json:"lastLogin"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// CanLogin reports whether the account is allowed to authenticate at all.
func (a *Admin) CanLogin() bool {
	return a.IsActive && a.PasswordHash != ""
}

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id uint) (*Admin, error)
	GetByUsername(ctx context.Context, username string) (*Admin, error)
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	Count(ctx context.Context) (int64, error)
}
