package broadcast

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamguard-vn/scamguard/internal/application/broadcast/usecases"
	domain "github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/interfaces/http/handlers/testutil"
	"github.com/scamguard-vn/scamguard/internal/shared/authorization"
	"github.com/scamguard-vn/scamguard/internal/shared/errors"
)

type mockCreateCampaignUC struct {
	err error
	got usecases.CreateCampaignCommand
}

func (m *mockCreateCampaignUC) Execute(_ context.Context, cmd usecases.CreateCampaignCommand) (*domain.Campaign, error) {
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Campaign{ID: 1, Title: cmd.Title, Status: domain.StatusDraft}, nil
}

type mockListCampaignsUC struct {
	got usecases.ListCampaignsQuery
}

func (m *mockListCampaignsUC) Execute(_ context.Context, query usecases.ListCampaignsQuery) ([]*domain.Campaign, error) {
	m.got = query
	return []*domain.Campaign{{ID: 1, Title: "Cảnh báo"}}, nil
}

type mockSendCampaignUC struct {
	err    error
	got    usecases.SendCampaignCommand
	called bool
}

func (m *mockSendCampaignUC) Execute(_ context.Context, cmd usecases.SendCampaignCommand) (*domain.Campaign, error) {
	m.called = true
	m.got = cmd
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Campaign{ID: cmd.ID, Status: domain.StatusSending}, nil
}

type mockStatsUC struct {
	err error
}

func (m *mockStatsUC) Execute(_ context.Context, query usecases.GetCampaignStatsQuery) (*domain.CampaignStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CampaignStats{CampaignID: query.ID, TotalUsers: 4, SuccessCount: 3, FailedCount: 1, SuccessRate: 75}, nil
}

type mockDeleteCampaignUC struct {
	err error
	got uint
}

func (m *mockDeleteCampaignUC) Execute(_ context.Context, cmd usecases.DeleteCampaignCommand) error {
	m.got = cmd.ID
	return m.err
}

type mockRegisterUC struct {
	got usecases.RegisterRecipientCommand
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterRecipientCommand) (*domain.Recipient, error) {
	m.got = cmd
	return &domain.Recipient{ID: 1, UserID: cmd.UserID, IsActive: true}, nil
}

type mockEventUC struct {
	called bool
	got    usecases.FollowerEventCommand
}

func (m *mockEventUC) Execute(_ context.Context, cmd usecases.FollowerEventCommand) error {
	m.called = true
	m.got = cmd
	return nil
}

type stubVerifier struct {
	valid bool
	sig   string
}

func (s *stubVerifier) VerifySignature(_ []byte, signature string) bool {
	s.sig = signature
	return s.valid
}

func TestHandler_CreateCampaign(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		mockErr  error
		wantCode int
	}{
		{name: "created", body: map[string]any{"title": "Cảnh báo", "content": "Không chuyển tiền"}, wantCode: http.StatusCreated},
		{name: "unknown target", body: map[string]any{"title": "x", "content": "y", "target": "vip"}, wantCode: http.StatusBadRequest},
		{name: "missing content", body: map[string]any{"title": "x"}, wantCode: http.StatusBadRequest},
		{name: "rejected by use case", body: map[string]any{"title": "x", "content": "y", "target": "specific"}, mockErr: errors.NewValidationError("target_user_ids is required for specific target"), wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockCreateCampaignUC{err: tt.mockErr}
			handler := NewHandler(mockUC, nil, nil, nil, nil, nil, nil, nil, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/broadcast/create", tt.body)
			testutil.SetAdminContext(c, 1, "admin", authorization.RoleAdmin)
			handler.CreateCampaign(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusCreated {
				assert.Equal(t, "admin", mockUC.got.CreatedBy)
			}
		})
	}
}

func TestHandler_ListCampaigns_Pagination(t *testing.T) {
	mockUC := &mockListCampaignsUC{}
	handler := NewHandler(nil, mockUC, nil, nil, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/zalo/broadcast/campaigns", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "10", "offset": "20"})
	handler.ListCampaigns(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 10, mockUC.got.Limit)
	assert.Equal(t, 20, mockUC.got.Offset)
}

func TestHandler_SendCampaign(t *testing.T) {
	scheduled := time.Date(2026, 11, 1, 8, 0, 0, 0, time.UTC)

	t.Run("empty body sends now", func(t *testing.T) {
		mockUC := &mockSendCampaignUC{}
		handler := NewHandler(nil, nil, mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/broadcast/3/send", nil)
		testutil.SetURLParam(c, "id", "3")
		handler.SendCampaign(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, uint(3), mockUC.got.ID)
		assert.True(t, mockUC.got.SendNow)
	})

	t.Run("scheduled", func(t *testing.T) {
		mockUC := &mockSendCampaignUC{}
		handler := NewHandler(nil, nil, mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/broadcast/3/send",
			map[string]any{"send_now": false, "scheduled_time": scheduled})
		testutil.SetURLParam(c, "id", "3")
		handler.SendCampaign(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.False(t, mockUC.got.SendNow)
		require.NotNil(t, mockUC.got.ScheduledTime)
		assert.True(t, scheduled.Equal(*mockUC.got.ScheduledTime))
	})

	t.Run("invalid id", func(t *testing.T) {
		mockUC := &mockSendCampaignUC{}
		handler := NewHandler(nil, nil, mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/broadcast/abc/send", nil)
		testutil.SetURLParam(c, "id", "abc")
		handler.SendCampaign(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, mockUC.called)
	})

	t.Run("already sent", func(t *testing.T) {
		mockUC := &mockSendCampaignUC{err: errors.NewConflictError("Campaign already sent")}
		handler := NewHandler(nil, nil, mockUC, nil, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/broadcast/3/send", nil)
		testutil.SetURLParam(c, "id", "3")
		handler.SendCampaign(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_GetCampaignStats(t *testing.T) {
	handler := NewHandler(nil, nil, nil, &mockStatsUC{}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/zalo/broadcast/5/stats", nil)
	testutil.SetURLParam(c, "id", "5")
	handler.GetCampaignStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.CampaignStats
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, uint(5), resp.CampaignID)
	assert.InDelta(t, 75.0, resp.SuccessRate, 0.001)
}

func TestHandler_DeleteCampaign_NotFound(t *testing.T) {
	mockUC := &mockDeleteCampaignUC{err: errors.NewNotFoundError("Campaign not found")}
	handler := NewHandler(nil, nil, nil, nil, mockUC, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/zalo/broadcast/8", nil)
	testutil.SetURLParam(c, "id", "8")
	handler.DeleteCampaign(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, uint(8), mockUC.got)
}

func TestHandler_RegisterRecipient(t *testing.T) {
	mockUC := &mockRegisterUC{}
	handler := NewHandler(nil, nil, nil, nil, nil, mockUC, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/zalo/recipients",
		map[string]any{"user_id": "u-1", "display_name": "Lan"})
	handler.RegisterRecipient(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u-1", mockUC.got.UserID)
	require.NotNil(t, mockUC.got.DisplayName)
	assert.Equal(t, "Lan", *mockUC.got.DisplayName)
}

func TestHandler_Webhook(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		verifier   SignatureVerifier
		wantCode   int
		wantCalled bool
		wantEvent  string
		wantUser   string
	}{
		{
			name:       "follow without verifier",
			body:       `{"event_name":"follow","follower":{"id":"new_user_123"}}`,
			wantCode:   http.StatusOK,
			wantCalled: true,
			wantEvent:  usecases.EventFollow,
			wantUser:   "new_user_123",
		},
		{
			name:       "message uses sender",
			body:       `{"event_name":"user_send_text","sender":{"id":"u-9"},"message":{"text":"hi"}}`,
			verifier:   &stubVerifier{valid: true},
			wantCode:   http.StatusOK,
			wantCalled: true,
			wantEvent:  usecases.EventUserText,
			wantUser:   "u-9",
		},
		{
			name:     "bad signature",
			body:     `{"event_name":"follow","follower":{"id":"x"}}`,
			verifier: &stubVerifier{valid: false},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed json",
			body:     `{"event_name":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "no user acknowledged",
			body:     `{"event_name":"oa_send_text"}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventUC := &mockEventUC{}
			handler := NewHandler(nil, nil, nil, nil, nil, nil, eventUC, tt.verifier, testutil.NewMockLogger())

			c, w := testutil.NewRawTestContext(http.MethodPost, "/api/v1/zalo/webhook", tt.body)
			c.Request.Header.Set(HeaderSignature, "abc123")
			handler.Webhook(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantCalled, eventUC.called)
			if tt.wantCalled {
				assert.Equal(t, tt.wantEvent, eventUC.got.EventName)
				assert.Equal(t, tt.wantUser, eventUC.got.UserID)
			}
			if v, ok := tt.verifier.(*stubVerifier); ok {
				assert.Equal(t, "abc123", v.sig)
			}
		})
	}
}
