package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func newTestSender(d *fakeDialer) *SMTPAlertSender {
	return &SMTPAlertSender{
		config: sharedConfig.EmailConfig{
			Enabled:         true,
			FromAddress:     "noreply@scamguard.local",
			FromName:        "ScamGuard",
			AlertRecipients: []string{"mod1@scamguard.local", "mod2@scamguard.local"},
		},
		dialer: d,
		logger: logger.NewLogger(),
	}
}

func TestNewAlertSender_DisabledIsNoop(t *testing.T) {
	s := NewAlertSender(sharedConfig.EmailConfig{Enabled: false}, logger.NewLogger())
	assert.IsType(t, NoopAlertSender{}, s)

	s = NewAlertSender(sharedConfig.EmailConfig{Enabled: true}, logger.NewLogger())
	assert.IsType(t, NoopAlertSender{}, s)
	assert.NoError(t, s.SendNewReportAlert(context.Background(), &report.Report{}))
}

func TestSMTPAlertSender_SendNewReportAlert(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)

	r := &report.Report{
		ID:          5,
		AccusedName: "Nguyen <b>Van</b> A",
		PhoneNumber: "0901234567",
		Amount:      2000000,
		Description: "Lừa đảo chuyển khoản",
		Category:    "banking",
		Priority:    report.PriorityHigh,
	}
	require.NoError(t, s.SendNewReportAlert(context.Background(), r))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"mod1@scamguard.local", "mod2@scamguard.local"}, m.GetHeader("To"))
	subject := m.GetHeader("Subject")
	require.Len(t, subject, 1)
	assert.Contains(t, subject[0], "#5")

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "0901234567")
}

func TestSMTPAlertSender_PropagatesDialError(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	s := newTestSender(d)

	err := s.SendNewReportAlert(context.Background(), &report.Report{ID: 1})
	assert.ErrorContains(t, err, "connection refused")
}

func TestSMTPAlertSender_CancelledContext(t *testing.T) {
	d := &fakeDialer{}
	s := newTestSender(d)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.SendNewReportAlert(ctx, &report.Report{ID: 1}), context.Canceled)
	assert.Empty(t, d.sent)
}
