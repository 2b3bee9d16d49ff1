package chat

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/application/chat/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/chat"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/testutil"
	"github.com/scamguard-vn/scamguard/internal/shared/constants"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

type mockSendMessageUC struct {
	result *usecases.SendMessageResult
	err    error
	got    usecases.SendMessageCommand
}

func (m *mockSendMessageUC) Execute(_ context.Context, cmd usecases.SendMessageCommand) (*usecases.SendMessageResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListSessionsUC struct {
	got usecases.ListSessionsQuery
}

func (m *mockListSessionsUC) Execute(_ context.Context, query usecases.ListSessionsQuery) ([]*domain.Session, error) {
	m.got = query
	return []*domain.Session{}, nil
}

type mockUpdateSessionUC struct {
	got usecases.UpdateSessionCommand
	err error
}

func (m *mockUpdateSessionUC) Execute(_ context.Context, cmd usecases.UpdateSessionCommand) (*domain.Session, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Session{SessionID: cmd.SessionID}, nil
}

type mockMarkReadUC struct {
	updated int64
}

func (m *mockMarkReadUC) Execute(_ context.Context, _ usecases.MarkReadCommand) (int64, error) {
	return m.updated, nil
}

func TestHandler_SendMessage(t *testing.T) {
	mockUC := &mockSendMessageUC{result: &usecases.SendMessageResult{
		Response:  "Tuyệt đối không chia sẻ mã OTP",
		Priority:  domain.PriorityHigh,
		SessionID: "abc-123",
	}}
	handler := NewHandler(mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/chat", SendMessageRequest{Message: "có người hỏi mã OTP"})
	c.Request.Header.Set("User-Agent", "test-agent")

	handler.SendMessage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, mockUC.got.SessionID)
	require.NotNil(t, mockUC.got.UserAgent)
	assert.Equal(t, "test-agent", *mockUC.got.UserAgent)

	var resp usecases.SendMessageResult
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, domain.PriorityHigh, resp.Priority)
	assert.Equal(t, "abc-123", resp.SessionID)
}

func TestHandler_SendMessage_EmptyMessage(t *testing.T) {
	mockUC := &mockSendMessageUC{}
	handler := NewHandler(mockUC, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/chat", map[string]string{"message": ""})
	handler.SendMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, constants.ErrMsgInvalidData, resp.Error)
}

func TestHandler_ListSessions_Filters(t *testing.T) {
	mockUC := &mockListSessionsUC{}
	handler := NewHandler(nil, mockUC, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/chat/sessions", nil)
	testutil.SetQueryParams(c, map[string]string{"priority": "high", "assignedAdmin": "mod1"})
	handler.ListSessions(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockUC.got.Filter.Priority)
	assert.Equal(t, domain.PriorityHigh, *mockUC.got.Filter.Priority)
	require.NotNil(t, mockUC.got.Filter.AssignedAdmin)
	assert.Equal(t, "mod1", *mockUC.got.Filter.AssignedAdmin)
	assert.Nil(t, mockUC.got.Filter.Status)
	assert.Equal(t, constants.DefaultChatSessionLimit, mockUC.got.Filter.Limit)
}

func TestHandler_UpdateSession(t *testing.T) {
	t.Run("patch is forwarded", func(t *testing.T) {
		mockUC := &mockUpdateSessionUC{}
		handler := NewHandler(nil, nil, nil, mockUC, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/chat/sessions/s1", map[string]string{"status": "closed"})
		testutil.SetURLParam(c, "sessionId", "s1")
		handler.UpdateSession(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "s1", mockUC.got.SessionID)
		require.NotNil(t, mockUC.got.Patch.Status)
		assert.Equal(t, domain.SessionClosed, *mockUC.got.Patch.Status)
	})

	t.Run("unknown session", func(t *testing.T) {
		mockUC := &mockUpdateSessionUC{err: errors.NewNotFoundError("Chat session not found")}
		handler := NewHandler(nil, nil, nil, mockUC, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/chat/sessions/nope", map[string]string{"status": "closed"})
		testutil.SetURLParam(c, "sessionId", "nope")
		handler.UpdateSession(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_MarkRead(t *testing.T) {
	handler := NewHandler(nil, nil, nil, nil, &mockMarkReadUC{updated: 4}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/admin/chat/sessions/s1/read", nil)
	testutil.SetURLParam(c, "sessionId", "s1")
	handler.MarkRead(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"updated":4}`, w.Body.String())
}
