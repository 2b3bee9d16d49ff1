package email

import (
	"context"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/scamguard-vn/scamguard/internal/domain/report"
	sharedConfig "github.com/scamguard-vn/scamguard/internal/shared/config"
	"github.com/scamguard-vn/scamguard/internal/shared/logger"
	"github.com/scamguard-vn/scamguard/internal/shared/utils"
)

// AlertSender notifies moderators about new submissions.
type AlertSender interface {
	SendNewReportAlert(ctx context.Context, r *report.Report) error
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPAlertSender struct {
	config sharedConfig.EmailConfig
	dialer sender
	logger logger.Interface
}

// NewAlertSender returns a no-op sender when email is disabled or no
// recipients are configured.
func NewAlertSender(cfg sharedConfig.EmailConfig, log logger.Interface) AlertSender {
	if !cfg.Enabled || len(cfg.AlertRecipients) == 0 {
		return NoopAlertSender{}
	}
	return &SMTPAlertSender{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: log,
	}
}

func (s *SMTPAlertSender) SendNewReportAlert(ctx context.Context, r *report.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.buildNewReportMessage(r)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infow("new report alert sent",
		"report_id", r.ID,
		"recipients", len(s.config.AlertRecipients),
	)
	return nil
}

func (s *SMTPAlertSender) buildNewReportMessage(r *report.Report) *gomail.Message {
	subject := fmt.Sprintf("[ScamGuard] Báo cáo mới #%d: %s", r.ID, r.AccusedName)

	var plain strings.Builder
	fmt.Fprintf(&plain, "Báo cáo lừa đảo mới #%d\n\n", r.ID)
	fmt.Fprintf(&plain, "Đối tượng: %s\n", r.AccusedName)
	fmt.Fprintf(&plain, "Số điện thoại: %s\n", utils.MaskPhone(r.PhoneNumber))
	fmt.Fprintf(&plain, "Số tiền: %d VND\n", r.Amount)
	fmt.Fprintf(&plain, "Danh mục: %s\n", r.Category)
	fmt.Fprintf(&plain, "Mức độ: %s\n\n", r.Priority)
	plain.WriteString(r.Description)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Báo cáo lừa đảo mới #%d</h2>
			<p><strong>Đối tượng:</strong> %s</p>
			<p><strong>Số điện thoại:</strong> %s</p>
			<p><strong>Số tiền:</strong> %d VND</p>
			<p><strong>Danh mục:</strong> %s</p>
			<p>%s</p>
		</body>
		</html>
	`, r.ID,
		html.EscapeString(r.AccusedName),
		html.EscapeString(utils.MaskPhone(r.PhoneNumber)),
		r.Amount,
		html.EscapeString(r.Category),
		html.EscapeString(r.Description),
	)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", s.config.AlertRecipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plain.String())
	m.AddAlternative("text/html", htmlBody)
	return m
}

type NoopAlertSender struct{}

func (NoopAlertSender) SendNewReportAlert(context.Context, *report.Report) error {
	return nil
}
