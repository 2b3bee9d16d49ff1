package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
)

func TestReportMapper_RoundTrip(t *testing.T) {
	m := NewReportMapper()
	bank := "techcombank"
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	entity := &report.Report{
		ID:          7,
		AccusedName: "Nguyễn Văn A",
		PhoneNumber: "0901234567",
		Bank:        &bank,
		Amount:      5000000,
		Status:      report.StatusVerified,
		Priority:    report.PriorityHigh,
		Category:    "investment",
		IsPublic:    true,
		CreatedAt:   now,
	}

	got := m.ToDomain(m.ToModel(entity))
	assert.Equal(t, entity, got)
	assert.Nil(t, m.ToDomain(nil))
	assert.Empty(t, m.ToDomainList(nil))
}

func TestBlogPostMapper_NilTagsBecomeEmpty(t *testing.T) {
	m := NewBlogPostMapper()
	post := m.ToDomain(&models.BlogPostModel{Title: "t", Status: "published"})
	assert.NotNil(t, post.Tags)
	assert.Equal(t, blog.StatusPublished, post.Status)
}

func TestAdminMapper_UnknownRoleFallsBack(t *testing.T) {
	a := NewAdminMapper().ToDomain(&models.AdminModel{Username: "x", Role: "owner"})
	assert.Equal(t, authorization.RoleModerator, a.Role)
	assert.NotNil(t, a.Permissions)
}

func TestAuditLogToDomain_NilDetails(t *testing.T) {
	e := AuditLogToDomain(&models.AuditLogModel{Action: "DELETE"})
	assert.NotNil(t, e.Details)
}
