package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/goroutine"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

const (
	maxContentLength = 2000
	dispatchTimeout  = 30 * time.Minute
)

type CreateCampaignCommand struct {
	Title         string
	Content       string
	Target        string
	TargetUserIDs []string
	CreatedBy     string
}

type CreateCampaignUseCase struct {
	repo   broadcast.Repository
	logger logger.Interface
}

func NewCreateCampaignUseCase(repo broadcast.Repository, logger logger.Interface) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{repo: repo, logger: logger}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, cmd CreateCampaignCommand) (*broadcast.Campaign, error) {
	target := broadcast.Target(cmd.Target)
	if target == "" {
		target = broadcast.TargetAll
	}

	var fields []errors.FieldError
	if strings.TrimSpace(cmd.Title) == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "title is required"})
	}
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		fields = append(fields, errors.FieldError{Field: "content", Message: "content is required"})
	} else if len([]rune(content)) > maxContentLength {
		fields = append(fields, errors.FieldError{Field: "content", Message: "content is too long"})
	}
	if !target.IsValid() {
		fields = append(fields, errors.FieldError{Field: "target", Message: "target must be all, active or specific"})
	}
	if target == broadcast.TargetSpecific && len(cmd.TargetUserIDs) == 0 {
		fields = append(fields, errors.FieldError{Field: "target_user_ids", Message: "target_user_ids is required for specific targeting"})
	}
	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(constants.ErrMsgInvalidData, fields)
	}

	c := &broadcast.Campaign{
		Title:     strings.TrimSpace(cmd.Title),
		Content:   content,
		Status:    broadcast.StatusDraft,
		Target:    target,
		CreatedBy: cmd.CreatedBy,
	}
	if target == broadcast.TargetSpecific {
		c.TargetUserIDs = cmd.TargetUserIDs
	}

	if err := uc.repo.CreateCampaign(ctx, c); err != nil {
		uc.logger.Errorw("failed to create broadcast campaign", "error", err)
		return nil, err
	}

	uc.logger.Infow("broadcast campaign created", "campaign_id", c.ID, "target", c.Target)
	return c, nil
}

type ListCampaignsQuery struct {
	Limit  int
	Offset int
}

type ListCampaignsUseCase struct {
	repo   broadcast.Repository
	logger logger.Interface
}

func NewListCampaignsUseCase(repo broadcast.Repository, logger logger.Interface) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{repo: repo, logger: logger}
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, query ListCampaignsQuery) ([]*broadcast.Campaign, error) {
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	campaigns, err := uc.repo.ListCampaigns(ctx, utils.NormalizeLimit(query.Limit, constants.DefaultCampaignListLimit), offset)
	if err != nil {
		uc.logger.Errorw("failed to list broadcast campaigns", "error", err)
		return nil, err
	}
	return campaigns, nil
}

type SendCampaignCommand struct {
	ID            uint
	SendNow       bool
	ScheduledTime *time.Time
}

// SendCampaignUseCase either starts delivery in the background right away or parks
// the campaign for the dispatch job.
type SendCampaignUseCase struct {
	repo       broadcast.Repository
	dispatcher *Dispatcher
	logger     logger.Interface
	now        func() time.Time
}

func NewSendCampaignUseCase(repo broadcast.Repository, dispatcher *Dispatcher, logger logger.Interface) *SendCampaignUseCase {
	return &SendCampaignUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (uc *SendCampaignUseCase) Execute(ctx context.Context, cmd SendCampaignCommand) (*broadcast.Campaign, error) {
	c, err := getCampaign(ctx, uc.repo, cmd.ID)
	if err != nil {
		return nil, err
	}
	if !c.CanSend() {
		return nil, errors.NewConflictError("Campaign cannot be sent in its current status", string(c.Status))
	}

	if !cmd.SendNow {
		if cmd.ScheduledTime == nil {
			return nil, errors.NewValidationError("scheduled_time is required unless send_now is set")
		}
		if !cmd.ScheduledTime.After(uc.now()) {
			return nil, errors.NewValidationError("scheduled_time must be in the future")
		}
		at := cmd.ScheduledTime.UTC()
		c.Status = broadcast.StatusScheduled
		c.ScheduledTime = &at
		if err := uc.repo.ClaimCampaign(ctx, c, broadcast.SendableStatuses...); err != nil {
			uc.logger.Errorw("failed to schedule broadcast campaign", "campaign_id", c.ID, "error", err)
			return nil, err
		}
		uc.logger.Infow("broadcast campaign scheduled", "campaign_id", c.ID, "scheduled_time", at)
		return c, nil
	}

	recipients, err := uc.dispatcher.Begin(ctx, c)
	if err != nil {
		uc.logger.Errorw("failed to start broadcast campaign", "campaign_id", c.ID, "error", err)
		return nil, err
	}

	snapshot := *c
	running := c
	goroutine.Detached(ctx, uc.logger, "broadcast-dispatch", dispatchTimeout, func(ctx context.Context) {
		uc.dispatcher.Deliver(ctx, running, recipients)
	})

	return &snapshot, nil
}

type GetCampaignStatsQuery struct {
	ID uint
}

type GetCampaignStatsUseCase struct {
	repo   broadcast.Repository
	logger logger.Interface
}

func NewGetCampaignStatsUseCase(repo broadcast.Repository, logger logger.Interface) *GetCampaignStatsUseCase {
	return &GetCampaignStatsUseCase{repo: repo, logger: logger}
}

func (uc *GetCampaignStatsUseCase) Execute(ctx context.Context, query GetCampaignStatsQuery) (*broadcast.CampaignStats, error) {
	c, err := getCampaign(ctx, uc.repo, query.ID)
	if err != nil {
		return nil, err
	}

	failures, err := uc.repo.ListFailures(ctx, c.ID)
	if err != nil {
		uc.logger.Errorw("failed to list broadcast failures", "campaign_id", c.ID, "error", err)
		return nil, err
	}
	if failures == nil {
		failures = []*broadcast.Failure{}
	}

	return &broadcast.CampaignStats{
		CampaignID:   c.ID,
		Status:       c.Status,
		TotalUsers:   c.TotalUsers,
		SentCount:    c.SentCount,
		SuccessCount: c.SuccessCount,
		FailedCount:  c.FailedCount,
		SuccessRate:  c.SuccessRate(),
		StartedAt:    c.StartedAt,
		CompletedAt:  c.CompletedAt,
		FailedUsers:  failures,
	}, nil
}

type DeleteCampaignCommand struct {
	ID uint
}

type DeleteCampaignUseCase struct {
	repo   broadcast.Repository
	logger logger.Interface
}

func NewDeleteCampaignUseCase(repo broadcast.Repository, logger logger.Interface) *DeleteCampaignUseCase {
	return &DeleteCampaignUseCase{repo: repo, logger: logger}
}

func (uc *DeleteCampaignUseCase) Execute(ctx context.Context, cmd DeleteCampaignCommand) error {
	c, err := getCampaign(ctx, uc.repo, cmd.ID)
	if err != nil {
		return err
	}
	if !c.CanDelete() {
		return errors.NewConflictError("Campaign is being sent and cannot be deleted")
	}

	if err := uc.repo.DeleteCampaign(ctx, c.ID); err != nil {
		uc.logger.Errorw("failed to delete broadcast campaign", "campaign_id", c.ID, "error", err)
		return err
	}
	uc.logger.Infow("broadcast campaign deleted", "campaign_id", c.ID)
	return nil
}

func getCampaign(ctx context.Context, repo broadcast.Repository, id uint) (*broadcast.Campaign, error) {
	c, err := repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("Campaign not found")
	}
	return c, nil
}
