package mappers

import (
	"github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/persistence/models"
	"github.com/scamguard-vn/scamguard/internal/shared/mapper"
)

// ChatMapper converts chat sessions and messages
type ChatMapper interface {
	SessionToDomain(model *models.ChatSessionModel) *chat.Session
	SessionToModel(entity *chat.Session) *models.ChatSessionModel
	SessionsToDomain(modelList []*models.ChatSessionModel) []*chat.Session
	MessageToDomain(model *models.ChatMessageModel) *chat.Message
	MessageToModel(entity *chat.Message) *models.ChatMessageModel
	MessagesToDomain(modelList []*models.ChatMessageModel) []*chat.Message
}

type ChatMapperImpl struct{}

func NewChatMapper() ChatMapper {
	return &ChatMapperImpl{}
}

func (m *ChatMapperImpl) SessionToDomain(model *models.ChatSessionModel) *chat.Session {
	if model == nil {
		return nil
	}

	return &chat.Session{
		ID:            model.ID,
		SessionID:     model.SessionID,
		UserAgent:     model.UserAgent,
		IPAddress:     model.IPAddress,
		Status:        chat.SessionStatus(model.Status),
		Priority:      chat.Priority(model.Priority),
		AssignedAdmin: model.AssignedAdmin,
		Tags:          stringsOrEmpty(model.Tags),
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func (m *ChatMapperImpl) SessionToModel(entity *chat.Session) *models.ChatSessionModel {
	if entity == nil {
		return nil
	}

	return &models.ChatSessionModel{
		ID:            entity.ID,
		SessionID:     entity.SessionID,
		UserAgent:     entity.UserAgent,
		IPAddress:     entity.IPAddress,
		Status:        string(entity.Status),
		Priority:      string(entity.Priority),
		AssignedAdmin: entity.AssignedAdmin,
		Tags:          stringsOrEmpty(entity.Tags),
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func (m *ChatMapperImpl) SessionsToDomain(modelList []*models.ChatSessionModel) []*chat.Session {
	return mapper.MapSlice(modelList, m.SessionToDomain)
}

func (m *ChatMapperImpl) MessageToDomain(model *models.ChatMessageModel) *chat.Message {
	if model == nil {
		return nil
	}

	return &chat.Message{
		ID:          model.ID,
		SessionID:   model.SessionID,
		Message:     model.Message,
		IsUser:      model.IsUser,
		MessageType: chat.MessageType(model.MessageType),
		IsRead:      model.IsRead,
		Timestamp:   model.Timestamp,
	}
}

func (m *ChatMapperImpl) MessageToModel(entity *chat.Message) *models.ChatMessageModel {
	if entity == nil {
		return nil
	}

	return &models.ChatMessageModel{
		ID:          entity.ID,
		SessionID:   entity.SessionID,
		Message:     entity.Message,
		IsUser:      entity.IsUser,
		MessageType: string(entity.MessageType),
		IsRead:      entity.IsRead,
		Timestamp:   entity.Timestamp,
	}
}

func (m *ChatMapperImpl) MessagesToDomain(modelList []*models.ChatMessageModel) []*chat.Message {
	return mapper.MapSlice(modelList, m.MessageToDomain)
}
