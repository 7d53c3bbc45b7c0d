package mail

import (
	"strings"

	"Portfolio/config"
	"Portfolio/logger"
)

// NewSender picks the transport named by MAIL_TRANSPORT: "smtp" uses the
// SMTP_* settings, anything else the email API.
func NewSender(cfg config.Config) Sender {
	if strings.EqualFold(strings.TrimSpace(cfg.MailTransport), "smtp") {
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	if cfg.EmailAPIKey == "" {
		logger.Warnf("mail: RESEND_API_KEY is not set, sends will be rejected")
	}
	return NewAPIClient(cfg.EmailAPIURL, cfg.EmailAPIKey, cfg.HTTPTimeout)
}
