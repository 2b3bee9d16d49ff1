package usecases

import (
	"context"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// progressEvery controls how often counters are flushed while a campaign is sending.
const progressEvery = 25

// Dispatcher delivers a campaign to its recipients one by one. Delivery failures are
// recorded per recipient and never abort the run.
type Dispatcher struct {
	repo   broadcast.Repository
	sender MessageSender
	logger logger.Interface
	now    func() time.Time
}

func NewDispatcher(repo broadcast.Repository, sender MessageSender, logger logger.Interface) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		sender: sender,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Begin resolves recipients and claims the campaign for sending. Only one caller can
// claim a given campaign; the others get a conflict error and c is left untouched.
func (d *Dispatcher) Begin(ctx context.Context, c *broadcast.Campaign) ([]*broadcast.Recipient, error) {
	recipients, err := d.repo.ListRecipients(ctx, c.Target, c.TargetUserIDs, d.now())
	if err != nil {
		return nil, err
	}

	claimed := *c
	claimed.Start(len(recipients), d.now())
	if err := d.repo.ClaimCampaign(ctx, &claimed, broadcast.SendableStatuses...); err != nil {
		return nil, err
	}
	*c = claimed
	return recipients, nil
}

// Deliver sends to every recipient and finishes the campaign.
func (d *Dispatcher) Deliver(ctx context.Context, c *broadcast.Campaign, recipients []*broadcast.Recipient) {
	log := d.logger.With("campaign_id", c.ID)
	log.Infow("broadcast dispatch started", "recipients", len(recipients))

	for i, r := range recipients {
		if ctx.Err() != nil {
			log.Warnw("broadcast dispatch interrupted", "sent", c.SentCount, "error", ctx.Err())
			break
		}

		_, err := d.sender.SendText(ctx, r.UserID, c.Content)
		c.RecordResult(err == nil)
		if err != nil {
			if ferr := d.repo.RecordFailure(ctx, &broadcast.Failure{
				CampaignID: c.ID,
				UserID:     r.UserID,
				Error:      err.Error(),
			}); ferr != nil {
				log.Warnw("failed to record broadcast failure", "user_id", r.UserID, "error", ferr)
			}
		}

		if (i+1)%progressEvery == 0 {
			if err := d.repo.SaveCampaign(ctx, c); err != nil {
				log.Warnw("failed to save broadcast progress", "error", err)
			}
		}
	}

	c.Finish(d.now())
	// the run context may already be done; the final counters still have to land
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := d.repo.SaveCampaign(saveCtx, c); err != nil {
		log.Errorw("failed to save finished broadcast", "error", err)
		return
	}

	log.Infow("broadcast dispatch finished",
		"status", c.Status,
		"success", c.SuccessCount,
		"failed", c.FailedCount,
	)
}
