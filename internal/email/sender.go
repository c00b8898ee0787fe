package email

import (
	"context"
	"errors"

	"lifemap/internal/domain"
)

// Sender define la interfaz para avisos de nuevas solicitudes de mentoria.
type Sender interface {
	SendMentorshipRequest(ctx context.Context, toEmail string, req domain.MentorshipRequest) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendMentorshipRequest(_ context.Context, _ string, _ domain.MentorshipRequest) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
