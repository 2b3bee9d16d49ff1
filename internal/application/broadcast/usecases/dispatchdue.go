package usecases

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// DispatchDueUseCase is run by the scheduler; it sends every scheduled campaign
// whose time has passed, one after another.
type DispatchDueUseCase struct {
	repo       broadcast.Repository
	dispatcher *Dispatcher
	logger     logger.Interface
	now        func() time.Time
}

func NewDispatchDueUseCase(repo broadcast.Repository, dispatcher *Dispatcher, logger logger.Interface) *DispatchDueUseCase {
	return &DispatchDueUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Execute returns how many campaigns were dispatched.
func (uc *DispatchDueUseCase) Execute(ctx context.Context) (int, error) {
	due, err := uc.repo.DueCampaigns(ctx, uc.now())
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, c := range due {
		if ctx.Err() != nil {
			return dispatched, ctx.Err()
		}
		recipients, err := uc.dispatcher.Begin(ctx, c)
		if errors.IsConflictError(err) {
			uc.logger.Infow("scheduled campaign already started elsewhere", "campaign_id", c.ID)
			continue
		}
		if err != nil {
			uc.logger.Errorw("failed to start scheduled campaign", "campaign_id", c.ID, "error", err)
			continue
		}
		uc.dispatcher.Deliver(ctx, c, recipients)
		dispatched++
	}
	return dispatched, nil
}
