package usecases

import (
	"context"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
)

type CreateCampaignExecutor interface {
	Execute(ctx context.Context, cmd CreateCampaignCommand) (*broadcast.Campaign, error)
}

type ListCampaignsExecutor interface {
	Execute(ctx context.Context, query ListCampaignsQuery) ([]*broadcast.Campaign, error)
}

type SendCampaignExecutor interface {
	Execute(ctx context.Context, cmd SendCampaignCommand) (*broadcast.Campaign, error)
}

type GetCampaignStatsExecutor interface {
	Execute(ctx context.Context, query GetCampaignStatsQuery) (*broadcast.CampaignStats, error)
}

type DeleteCampaignExecutor interface {
	Execute(ctx context.Context, cmd DeleteCampaignCommand) error
}

type RegisterRecipientExecutor interface {
	Execute(ctx context.Context, cmd RegisterRecipientCommand) (*broadcast.Recipient, error)
}

type HandleFollowerEventExecutor interface {
	Execute(ctx context.Context, cmd FollowerEventCommand) error
}

// MessageSender delivers one text message to a follower.
type MessageSender interface {
	SendText(ctx context.Context, userID, text string) (*scamclient.SendResult, error)
}
