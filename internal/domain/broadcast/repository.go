package broadcast

import (
	"context"
	"time"
)

type Repository interface {
	CreateCampaign(ctx context.Context, c *Campaign) error
	GetCampaign(ctx context.Context, id uint) (*Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]*Campaign, error)
	// SaveCampaign persists status, counters and timestamps of an existing campaign.
	SaveCampaign(ctx context.Context, c *Campaign) error
	// ClaimCampaign is SaveCampaign guarded by the stored status: the write only lands while
	// the row is still in one of from. A lost race returns a conflict error.
	ClaimCampaign(ctx context.Context, c *Campaign, from ...Status) error
	DeleteCampaign(ctx context.Context, id uint) error
	// DueCampaigns returns scheduled campaigns whose time has come, oldest first.
	DueCampaigns(ctx context.Context, now time.Time) ([]*Campaign, error)

	UpsertRecipient(ctx context.Context, r *Recipient) error
	ListRecipients(ctx context.Context, target Target, userIDs []string, now time.Time) ([]*Recipient, error)

	RecordFailure(ctx context.Context, f *Failure) error
	ListFailures(ctx context.Context, campaignID uint) ([]*Failure, error)
}
