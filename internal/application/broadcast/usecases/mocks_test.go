package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/broadcast"
	"github.com/scamguard-vn/scamguard/internal/infrastructure/scamclient"
	apperrors "github.com/scamguard-vn/scamguard/internal/shared/errors"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

// memoryBroadcastRepository is a map-backed broadcast.Repository.
type memoryBroadcastRepository struct {
	mu         sync.Mutex
	nextID     uint
	campaigns  map[uint]*broadcast.Campaign
	recipients map[string]*broadcast.Recipient
	failures   []*broadcast.Failure
	saves      int
}

func newMemoryBroadcastRepository() *memoryBroadcastRepository {
	return &memoryBroadcastRepository{
		campaigns:  map[uint]*broadcast.Campaign{},
		recipients: map[string]*broadcast.Recipient{},
	}
}

func (m *memoryBroadcastRepository) CreateCampaign(_ context.Context, c *broadcast.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now().UTC()
	cp := *c
	m.campaigns[c.ID] = &cp
	return nil
}

func (m *memoryBroadcastRepository) GetCampaign(_ context.Context, id uint) (*broadcast.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.campaigns[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memoryBroadcastRepository) ListCampaigns(_ context.Context, limit, offset int) ([]*broadcast.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*broadcast.Campaign
	for id := uint(1); id <= m.nextID; id++ {
		if c, ok := m.campaigns[id]; ok {
			cp := *c
			out = append(out, &cp)
		}
	}
	if offset >= len(out) {
		return []*broadcast.Campaign{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memoryBroadcastRepository) ClaimCampaign(_ context.Context, c *broadcast.Campaign, from ...broadcast.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.campaigns[c.ID]
	if !ok {
		return apperrors.NewNotFoundError("Campaign not found")
	}
	for _, s := range from {
		if stored.Status == s {
			cp := *c
			m.campaigns[c.ID] = &cp
			m.saves++
			return nil
		}
	}
	return apperrors.NewConflictError("Campaign was already claimed by another dispatch")
}

func (m *memoryBroadcastRepository) SaveCampaign(_ context.Context, c *broadcast.Campaign) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.campaigns[c.ID]; !ok {
		return errors.New("campaign not found")
	}
	cp := *c
	m.campaigns[c.ID] = &cp
	m.saves++
	return nil
}

func (m *memoryBroadcastRepository) DeleteCampaign(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.campaigns, id)
	return nil
}

func (m *memoryBroadcastRepository) DueCampaigns(_ context.Context, now time.Time) ([]*broadcast.Campaign, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*broadcast.Campaign
	for id := uint(1); id <= m.nextID; id++ {
		c, ok := m.campaigns[id]
		if ok && c.Status == broadcast.StatusScheduled && c.ScheduledTime != nil && !c.ScheduledTime.After(now) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memoryBroadcastRepository) UpsertRecipient(_ context.Context, r *broadcast.Recipient) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.recipients[r.UserID]; ok {
		r.FollowedAt = existing.FollowedAt
	}
	cp := *r
	m.recipients[r.UserID] = &cp
	return nil
}

func (m *memoryBroadcastRepository) ListRecipients(_ context.Context, target broadcast.Target, userIDs []string, now time.Time) ([]*broadcast.Recipient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range userIDs {
		wanted[id] = true
	}
	var out []*broadcast.Recipient
	for _, r := range m.recipients {
		if !r.IsActive {
			continue
		}
		if target == broadcast.TargetSpecific && !wanted[r.UserID] {
			continue
		}
		if target == broadcast.TargetActive && (r.LastInteraction == nil || r.LastInteraction.Before(now.Add(-broadcast.ActiveWindow))) {
			continue
		}
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memoryBroadcastRepository) RecordFailure(_ context.Context, f *broadcast.Failure) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, f)
	return nil
}

func (m *memoryBroadcastRepository) ListFailures(_ context.Context, campaignID uint) ([]*broadcast.Failure, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*broadcast.Failure
	for _, f := range m.failures {
		if f.CampaignID == campaignID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memoryBroadcastRepository) campaign(id uint) broadcast.Campaign {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.campaigns[id]
}

// staleBroadcastRepository serves reads from snapshots taken before any dispatch started,
// the way two admins or two scheduler ticks see the same row.
type staleBroadcastRepository struct {
	*memoryBroadcastRepository
	pinned map[uint]broadcast.Campaign
}

func pinCampaigns(repo *memoryBroadcastRepository, ids ...uint) *staleBroadcastRepository {
	pinned := map[uint]broadcast.Campaign{}
	for _, id := range ids {
		pinned[id] = repo.campaign(id)
	}
	return &staleBroadcastRepository{memoryBroadcastRepository: repo, pinned: pinned}
}

func (s *staleBroadcastRepository) GetCampaign(_ context.Context, id uint) (*broadcast.Campaign, error) {
	c, ok := s.pinned[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *staleBroadcastRepository) DueCampaigns(_ context.Context, _ time.Time) ([]*broadcast.Campaign, error) {
	var out []*broadcast.Campaign
	for _, c := range s.pinned {
		cp := c
		out = append(out, &cp)
	}
	return out, nil
}

// mockSender fails for user IDs listed in failFor.
type mockSender struct {
	mu      sync.Mutex
	failFor map[string]bool
	sent    []string
}

func (s *mockSender) SendText(_ context.Context, userID, _ string) (*scamclient.SendResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, userID)
	if s.failFor[userID] {
		return nil, scamclient.ErrSendFailed
	}
	return &scamclient.SendResult{}, nil
}

func (s *mockSender) sentTo() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent...)
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
