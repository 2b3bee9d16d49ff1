package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type mockReportRepository struct {
	CreateFunc           func(ctx context.Context, r *report.Report) error
	GetByIDFunc          func(ctx context.Context, id uint) (*report.Report, error)
	SearchFunc           func(ctx context.Context, query string, filter report.Filter) ([]*report.Report, error)
	FindByIdentifierFunc func(ctx context.Context, keyword string, publicOnly bool, limit int) ([]*report.Report, error)
	RecentFunc           func(ctx context.Context, limit int) ([]*report.Report, error)
	ListByStatusFunc     func(ctx context.Context, status report.Status, limit int) ([]*report.Report, error)
	ListFunc             func(ctx context.Context, filter report.Filter) ([]*report.Report, error)
	CountFunc            func(ctx context.Context, filter report.Filter) (int64, error)
	UpdateFunc           func(ctx context.Context, id uint, patch report.Patch) (*report.Report, error)
	UpdateStatusFunc     func(ctx context.Context, id uint, status report.Status, verifiedBy *string, at time.Time) (*report.Report, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	StatsFunc            func(ctx context.Context, since time.Time) (*report.Stats, error)
}

func (m *mockReportRepository) Create(ctx context.Context, r *report.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return nil
}

func (m *mockReportRepository) GetByID(ctx context.Context, id uint) (*report.Report, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReportRepository) Search(ctx context.Context, query string, filter report.Filter) ([]*report.Report, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, filter)
	}
	return nil, nil
}

func (m *mockReportRepository) FindByIdentifier(ctx context.Context, keyword string, publicOnly bool, limit int) ([]*report.Report, error) {
	if m.FindByIdentifierFunc != nil {
		return m.FindByIdentifierFunc(ctx, keyword, publicOnly, limit)
	}
	return nil, nil
}

func (m *mockReportRepository) Recent(ctx context.Context, limit int) ([]*report.Report, error) {
	if m.RecentFunc != nil {
		return m.RecentFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockReportRepository) ListByStatus(ctx context.Context, status report.Status, limit int) ([]*report.Report, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status, limit)
	}
	return nil, nil
}

func (m *mockReportRepository) List(ctx context.Context, filter report.Filter) ([]*report.Report, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReportRepository) Count(ctx context.Context, filter report.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockReportRepository) Update(ctx context.Context, id uint, patch report.Patch) (*report.Report, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockReportRepository) UpdateStatus(ctx context.Context, id uint, status report.Status, verifiedBy *string, at time.Time) (*report.Report, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, verifiedBy, at)
	}
	return nil, nil
}

func (m *mockReportRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockReportRepository) Stats(ctx context.Context, since time.Time) (*report.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, since)
	}
	return &report.Stats{}, nil
}

type mockAlertSender struct {
	mu   sync.Mutex
	sent []*report.Report
	err  error
	done chan struct{}
}

func newMockAlertSender() *mockAlertSender {
	return &mockAlertSender{done: make(chan struct{}, 8)}
}

func (m *mockAlertSender) SendNewReportAlert(_ context.Context, r *report.Report) error {
	m.mu.Lock()
	m.sent = append(m.sent, r)
	m.mu.Unlock()
	m.done <- struct{}{}
	return m.err
}

func (m *mockAlertSender) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
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

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
