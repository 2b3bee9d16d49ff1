package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/mappers"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/db"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// ChatRepository implements chat.Repository
type ChatRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.ChatMapper
}

func NewChatRepository(database *gorm.DB, logger logger.Interface) *ChatRepository {
	return &ChatRepository{
		db:     database,
		logger: logger,
		mapper: mappers.NewChatMapper(),
	}
}

func (r *ChatRepository) GetSession(ctx context.Context, sessionID string) (*chat.Session, error) {
	var model models.ChatSessionModel
	err := db.GetTxFromContext(ctx, r.db).Where("session_id = ?", sessionID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return r.mapper.SessionToDomain(&model), nil
}

func (r *ChatRepository) CreateSession(ctx context.Context, s *chat.Session) error {
	model := r.mapper.SessionToModel(s)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("Chat session already exists")
		}
		return fmt.Errorf("failed to create chat session: %w", err)
	}
	*s = *r.mapper.SessionToDomain(model)
	return nil
}

func (r *ChatRepository) UpdateSession(ctx context.Context, sessionID string, patch chat.SessionPatch) (*chat.Session, error) {
	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	setIf(updates, "assigned_admin", patch.AssignedAdmin)
	if patch.Status != nil {
		updates["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		updates["priority"] = string(*patch.Priority)
	}
	if patch.Tags != nil {
		updates["tags"] = stringsJSON(*patch.Tags)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ChatSessionModel{}).
		Where("session_id = ?", sessionID).
		Updates(updates)
	if result.Error != nil {
		r.logger.Errorw("failed to update chat session", "session_id", sessionID, "error", result.Error)
		return nil, fmt.Errorf("failed to update chat session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("Chat session not found")
	}
	return r.GetSession(ctx, sessionID)
}

// ListSessions returns the most recently active sessions first.
func (r *ChatRepository) ListSessions(ctx context.Context, filter chat.SessionFilter) ([]*chat.Session, error) {
	var modelList []*models.ChatSessionModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(
			func(tx *gorm.DB) *gorm.DB {
				tx = db.EqualIfSet("status", filter.Status)(tx)
				tx = db.EqualIfSet("priority", filter.Priority)(tx)
				return db.EqualIfSet("assigned_admin", filter.AssignedAdmin)(tx)
			},
			db.Newest("updated_at"),
			db.Paginate(utils.NormalizeLimit(filter.Limit, constants.DefaultChatSessionLimit), 0),
		).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return r.mapper.SessionsToDomain(modelList), nil
}

func (r *ChatRepository) CreateMessage(ctx context.Context, m *chat.Message) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	if m.MessageType == "" {
		m.MessageType = chat.MessageText
	}
	model := r.mapper.MessageToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	m.ID = model.ID
	return nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, sessionID string, limit int) ([]*chat.Message, error) {
	var modelList []*models.ChatMessageModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("session_id = ?", sessionID).
		Scopes(db.Oldest("created_at"), db.Paginate(utils.NormalizeLimit(limit, constants.DefaultChatMessageLimit), 0)).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return r.mapper.MessagesToDomain(modelList), nil
}

func (r *ChatRepository) MarkMessagesRead(ctx context.Context, sessionID string) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ChatMessageModel{}).
		Where("session_id = ? AND is_user = ? AND is_read = ?", sessionID, true, false).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ChatRepository) Stats(ctx context.Context) (*chat.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	stats := &chat.Stats{}

	if err := tx.Model(&models.ChatSessionModel{}).Count(&stats.TotalSessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count chat sessions: %w", err)
	}
	if err := tx.Model(&models.ChatSessionModel{}).
		Where("status = ?", string(chat.SessionActive)).
		Count(&stats.ActiveSessions).Error; err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if err := tx.Model(&models.ChatMessageModel{}).Count(&stats.TotalMessages).Error; err != nil {
		return nil, fmt.Errorf("failed to count chat messages: %w", err)
	}
	if err := tx.Model(&models.ChatMessageModel{}).
		Where("is_user = ? AND is_read = ?", true, false).
		Count(&stats.UnreadMessages).Error; err != nil {
		return nil, fmt.Errorf("failed to count unread messages: %w", err)
	}

	var err error
	if stats.ByPriority, err = countBy(tx, &models.ChatSessionModel{}, "priority"); err != nil {
		return nil, err
	}
	return stats, nil
}
