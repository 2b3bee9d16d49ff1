package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scamguard-vn/scamguard/internal/domain/blog"
	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

const analyticsWindow = 7 * 24 * time.Hour

type Analytics struct {
	Reports     *report.Stats `json:"reports"`
	Blogs       *blog.Stats   `json:"blogs"`
	Chat        *chat.Stats   `json:"chat"`
	GeneratedAt time.Time     `json:"generatedAt"`
}

// GetAnalyticsUseCase gathers the dashboard counters from every store concurrently.
type GetAnalyticsUseCase struct {
	reportRepo report.Repository
	blogRepo   blog.Repository
	chatRepo   chat.Repository
	logger     logger.Interface
	now        func() time.Time
}

func NewGetAnalyticsUseCase(
	reportRepo report.Repository,
	blogRepo blog.Repository,
	chatRepo chat.Repository,
	logger logger.Interface,
) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		reportRepo: reportRepo,
		blogRepo:   blogRepo,
		chatRepo:   chatRepo,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *GetAnalyticsUseCase) Execute(ctx context.Context) (*Analytics, error) {
	now := uc.now()
	result := &Analytics{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := uc.reportRepo.Stats(gctx, now.Add(-analyticsWindow))
		result.Reports = s
		return err
	})
	g.Go(func() error {
		s, err := uc.blogRepo.Stats(gctx)
		result.Blogs = s
		return err
	})
	g.Go(func() error {
		s, err := uc.chatRepo.Stats(gctx)
		result.Chat = s
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to collect analytics", "error", err)
		return nil, err
	}
	return result, nil
}
