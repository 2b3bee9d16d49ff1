package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/auth"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/repository"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/services/markdown"
)

func setupSeeder(t *testing.T) (*Seeder, *repository.Storage) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(models.All()...))

	storage := repository.NewStorage(database, logger.NewLogger())
	seeder := NewSeeder(
		RepositoriesFromStorage(storage),
		auth.NewBcryptPasswordHasher(bcrypt.MinCost),
		markdown.NewMarkdownService(),
		sharedConfig.SeedConfig{Enabled: true, AdminUsername: "admin", AdminPassword: "admin123"},
		logger.NewLogger(),
	)
	return seeder, storage
}

func TestSeedIfEmpty_FillsEmptyTables(t *testing.T) {
	seeder, storage := setupSeeder(t)
	ctx := context.Background()

	res, err := seeder.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Reports)
	assert.Equal(t, 3, res.BlogPosts)
	assert.Equal(t, 1, res.Admins)
	assert.Equal(t, 5, res.ReportCategories)
	assert.Equal(t, 3, res.BlogCategories)
	assert.Equal(t, 4, res.Settings)

	a, err := storage.Admins.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, authorization.RoleAdmin, a.Role)
	assert.NotEqual(t, "admin123", a.PasswordHash)
	assert.NoError(t, auth.NewBcryptPasswordHasher(bcrypt.MinCost).Verify("admin123", a.PasswordHash))

	published := blog.StatusPublished
	posts, err := storage.Blogs.List(ctx, "", blog.Filter{Status: &published})
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for _, p := range posts {
		assert.NotNil(t, p.PublishedAt)
		assert.NotEmpty(t, p.ContentHTML)
	}

	reports, err := storage.Reports.Search(ctx, "", report.Filter{})
	require.NoError(t, err)
	require.Len(t, reports, 3)
	for _, r := range reports {
		assert.Equal(t, report.StatusPending, r.Status)
		if r.IsAnonymous {
			assert.Nil(t, r.ReporterName)
		}
	}
}

func TestSeedIfEmpty_IsIdempotent(t *testing.T) {
	seeder, storage := setupSeeder(t)
	ctx := context.Background()

	_, err := seeder.SeedIfEmpty(ctx)
	require.NoError(t, err)

	res, err := seeder.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Total())

	count, err := storage.Reports.Count(ctx, report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	admins, err := storage.Admins.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), admins)
}

func TestSeedIfEmpty_SkipsPopulatedTable(t *testing.T) {
	seeder, storage := setupSeeder(t)
	ctx := context.Background()

	existing := &report.Report{AccusedName: "X", PhoneNumber: "0900000000", Amount: 1, Description: "d"}
	existing.ApplyDefaults()
	require.NoError(t, storage.Reports.Create(ctx, existing))

	res, err := seeder.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Reports)
	assert.Equal(t, 3, res.BlogPosts)

	count, err := storage.Reports.Count(ctx, report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

type countingTx struct {
	inner TxRunner
	calls int
}

func (c *countingTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	c.calls++
	return c.inner.RunInTransaction(ctx, fn)
}

func TestSeedIfEmpty_SeedsEachTableInTransaction(t *testing.T) {
	seeder, storage := setupSeeder(t)
	tx := &countingTx{inner: storage.Tx}
	seeder.repos.Tx = tx

	res, err := seeder.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, tx.calls)
	assert.Greater(t, res.Total(), 0)
}
