package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type RegisterRecipientCommand struct {
	UserID      string
	DisplayName *string
	IsActive    *bool
}

type RegisterRecipientUseCase struct {
	repo   broadcast.Repository
	logger logger.Interface
	now    func() time.Time
}

func NewRegisterRecipientUseCase(repo broadcast.Repository, logger logger.Interface) *RegisterRecipientUseCase {
	return &RegisterRecipientUseCase{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (uc *RegisterRecipientUseCase) Execute(ctx context.Context, cmd RegisterRecipientCommand) (*broadcast.Recipient, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return nil, errors.NewValidationError("user_id is required")
	}

	now := uc.now()
	r := &broadcast.Recipient{
		UserID:          userID,
		DisplayName:     cmd.DisplayName,
		IsActive:        cmd.IsActive == nil || *cmd.IsActive,
		FollowedAt:      now,
		LastInteraction: &now,
	}
	if err := uc.repo.UpsertRecipient(ctx, r); err != nil {
		uc.logger.Errorw("failed to register broadcast recipient", "error", err)
		return nil, err
	}
	return r, nil
}

// Follower webhook events.
const (
	EventFollow   = "follow"
	EventUnfollow = "unfollow"
	EventUserText = "user_send_text"
)

type FollowerEventCommand struct {
	EventName   string
	UserID      string
	DisplayName *string
}

// HandleFollowerEventUseCase keeps the recipient list in step with the messaging app.
// Unknown events are ignored.
type HandleFollowerEventUseCase struct {
	register *RegisterRecipientUseCase
	logger   logger.Interface
}

func NewHandleFollowerEventUseCase(register *RegisterRecipientUseCase, logger logger.Interface) *HandleFollowerEventUseCase {
	return &HandleFollowerEventUseCase{register: register, logger: logger}
}

func (uc *HandleFollowerEventUseCase) Execute(ctx context.Context, cmd FollowerEventCommand) error {
	var active bool
	switch cmd.EventName {
	case EventFollow, EventUserText:
		active = true
	case EventUnfollow:
		active = false
	default:
		uc.logger.Debugw("ignoring follower event", "event", cmd.EventName)
		return nil
	}

	_, err := uc.register.Execute(ctx, RegisterRecipientCommand{
		UserID:      cmd.UserID,
		DisplayName: cmd.DisplayName,
		IsActive:    &active,
	})
	return err
}
