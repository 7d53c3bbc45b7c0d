package mail

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
)

// SMTPSender delivers messages through an SMTP relay with PLAIN auth.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string

	// send is swapped in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(host, port, user, pass string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass, send: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.User == "" || s.Pass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}
	from := s.User
	if addr, err := mail.ParseAddress(msg.From); err == nil {
		from = addr.Address
	}
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	send := s.send
	if send == nil {
		send = smtp.SendMail
	}
	if err := send(s.Host+":"+s.Port, auth, from, msg.To, buildMIME(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMIME(msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + headerValue(msg.From) + "\r\n")
	b.WriteString("To: " + headerValue(strings.Join(msg.To, ", ")) + "\r\n")
	b.WriteString("Subject: " + headerValue(msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	b.WriteString("\r\n")
	return []byte(b.String())
}

var headerReplacer = strings.NewReplacer("\r", " ", "\n", " ")

// headerValue keeps user supplied text from starting a new header line.
func headerValue(s string) string {
	return headerReplacer.Replace(s)
}
