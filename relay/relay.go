// Package relay turns contact form submissions into two emails: a
// mandatory notification to the site owner and a best-effort
// confirmation to the sender.
package relay

import (
	"context"
	"errors"
	"strings"

	"Portfolio/logger"
	"Portfolio/mail"
	"Portfolio/models"
)

// ErrInvalidSubmission is returned when a field is empty after trimming.
var ErrInvalidSubmission = errors.New("Name, email, and message are required")

const (
	confirmationSubject = "Thanks for reaching out!"
	notificationPrefix  = "New Contact Message from "
)

type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s Submission) trimmed() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Message: strings.TrimSpace(s.Message),
	}
}

func (s Submission) Valid() bool {
	t := s.trimmed()
	return t.Name != "" && t.Email != "" && t.Message != ""
}

// NotifyError wraps a failed owner notification.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return "Failed to send notification email: " + e.Err.Error()
}

func (e *NotifyError) Unwrap() error { return e.Err }

// MessageSink stores submissions for the admin inbox.
type MessageSink interface {
	CreateMessage(ctx context.Context, m *models.ContactMessage) error
}

type Service struct {
	Sender mail.Sender
	// Messages is optional; when set every submission whose notification
	// went out is stored.
	Messages MessageSink

	OwnerEmail  string
	OwnerName   string
	NotifyFrom  string
	ConfirmFrom string
}

// Submit validates the submission and sends the notification, then the
// confirmation. Only a validation error or a failed notification is
// returned; storage and confirmation failures are logged.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	if !sub.Valid() {
		logger.Warnf("relay: missing required fields")
		return ErrInvalidSubmission
	}
	sub = sub.trimmed()
	logger.Infof("relay: processing contact from %s <%s>", sub.Name, sub.Email)

	if err := s.notify(ctx, sub); err != nil {
		logger.WithError(err).Errorf("relay: notification email failed")
		return &NotifyError{Err: err}
	}
	logger.Infof("relay: notification email sent")

	// only submissions the owner was notified about are stored
	if s.Messages != nil {
		msg := &models.ContactMessage{Name: sub.Name, Email: sub.Email, Message: sub.Message}
		if err := s.Messages.CreateMessage(ctx, msg); err != nil {
			logger.WithError(err).Errorf("relay: store contact message")
		}
	}

	if err := s.confirm(ctx, sub); err != nil {
		logger.WithError(err).Errorf("relay: confirmation email failed, notification was sent")
	} else {
		logger.Infof("relay: confirmation email sent")
	}
	return nil
}

func (s *Service) notify(ctx context.Context, sub Submission) error {
	html, err := notificationHTML(sub)
	if err != nil {
		return err
	}
	return s.Sender.Send(ctx, mail.Message{
		From:    s.NotifyFrom,
		To:      []string{s.OwnerEmail},
		Subject: notificationPrefix + sub.Name,
		HTML:    html,
	})
}

func (s *Service) confirm(ctx context.Context, sub Submission) error {
	html, err := confirmationHTML(sub, s.OwnerName)
	if err != nil {
		return err
	}
	return s.Sender.Send(ctx, mail.Message{
		From:    s.ConfirmFrom,
		To:      []string{sub.Email},
		Subject: confirmationSubject,
		HTML:    html,
	})
}
