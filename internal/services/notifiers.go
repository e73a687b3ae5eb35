package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/models"
)

const (
	errEmailNotConfigured = "Email service not configured"
	errNoRecipient        = "no recipient"
)

// SendMailFunc matches smtp.SendMail
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type EmailNotifier struct {
	config   config.SMTPConfig
	sendMail SendMailFunc
}

type EmailNotifierOption func(*EmailNotifier)

func WithSendMail(fn SendMailFunc) EmailNotifierOption {
	return func(n *EmailNotifier) {
		n.sendMail = fn
	}
}

func NewEmailNotifier(cfg config.SMTPConfig, opts ...EmailNotifierOption) *EmailNotifier {
	n := &EmailNotifier{config: cfg, sendMail: smtp.SendMail}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *EmailNotifier) Channel() models.NotificationChannel {
	return models.ChannelEmail
}

func (n *EmailNotifier) Send(ctx context.Context, alert models.AlertHistory, recipient string) models.DeliveryResult {
	result := models.DeliveryResult{Channel: models.ChannelEmail, Recipient: recipient, Status: models.DeliveryFailed}

	if !n.config.Configured() {
		result.Error = errEmailNotConfigured
		return result
	}
	if recipient == "" {
		result.Error = errNoRecipient
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	var auth smtp.Auth
	if n.config.Username != "" {
		auth = smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	}

	if err := n.sendMail(n.config.Addr(), auth, n.config.From, []string{recipient}, n.message(alert, recipient)); err != nil {
		result.Error = fmt.Sprintf("failed to send email: %v", err)
		return result
	}

	result.Status = models.DeliverySent
	return result
}

func (n *EmailNotifier) message(alert models.AlertHistory, recipient string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.config.From)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", EmailSubject(alert))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(strings.ReplaceAll(EmailBody(alert), "\n", "\r\n"))
	return []byte(b.String())
}

func EmailSubject(alert models.AlertHistory) string {
	return "FinTrack Alert: " + string(alert.AlertType)
}

func EmailBody(alert models.AlertHistory) string {
	return fmt.Sprintf("Hi,\n\nYou have a new %s alert from FinTrack:\n\n%s\n\nSeverity: %s\nTime: %s\n\nLog in to FinTrack to view details.\n\nBest regards,\nFinTrack Team",
		alert.AlertType,
		alert.Message,
		alert.Severity,
		alert.CreatedAt.Format(time.RFC1123),
	)
}

// InAppNotifier always succeeds: the stored alert row is the user's inbox
type InAppNotifier struct{}

func NewInAppNotifier() *InAppNotifier {
	return &InAppNotifier{}
}

func (n *InAppNotifier) Channel() models.NotificationChannel {
	return models.ChannelInApp
}

func (n *InAppNotifier) Send(_ context.Context, alert models.AlertHistory, _ string) models.DeliveryResult {
	return models.DeliveryResult{
		Channel:   models.ChannelInApp,
		Recipient: alert.UserID.String(),
		Status:    models.DeliverySent,
	}
}

// LogNotifier writes alerts to the log, for development setups
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Channel() models.NotificationChannel {
	return models.ChannelLog
}

func (n *LogNotifier) Send(ctx context.Context, alert models.AlertHistory, recipient string) models.DeliveryResult {
	n.logger.InfoContext(ctx, "alert notification",
		slog.String("alert_id", alert.ID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.String("alert_type", string(alert.AlertType)),
		slog.String("severity", string(alert.Severity)),
		slog.String("message", alert.Message),
	)
	return models.DeliveryResult{Channel: models.ChannelLog, Recipient: recipient, Status: models.DeliverySent}
}

// NotifiersFor builds the notifiers for the configured channel names in
// order. Unknown names are skipped with a warning.
func NotifiersFor(channels []string, smtpConfig config.SMTPConfig) []Notifier {
	notifiers := make([]Notifier, 0, len(channels))
	for _, channel := range channels {
		switch models.NotificationChannel(strings.ToUpper(channel)) {
		case models.ChannelEmail:
			notifiers = append(notifiers, NewEmailNotifier(smtpConfig))
		case models.ChannelInApp:
			notifiers = append(notifiers, NewInAppNotifier())
		case models.ChannelLog:
			notifiers = append(notifiers, NewLogNotifier(nil))
		default:
			slog.Warn("Unknown notification channel ignored", "channel", channel)
		}
	}
	return notifiers
}
