package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/medicore/hospital-api/internal/config"
	"github.com/medicore/hospital-api/internal/model"
)

// Service sends transactional mail. All sends are best-effort; a delivery
// failure never fails the request that triggered it.
type Service interface {
	SendBookingConfirmation(ctx context.Context, appt model.Record) error
}

// NewService returns an SMTP-backed sender, or a no-op one when no SMTP
// host is configured.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

type noopService struct{}

func (noopService) SendBookingConfirmation(context.Context, model.Record) error { return nil }

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

func (s *smtpService) SendBookingConfirmation(_ context.Context, appt model.Record) error {
	to := appt.StringField("email")
	if to == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your appointment is booked")
	m.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour appointment with %s (%s) on %s at %s is scheduled.\n"+
			"Keep this reference for your records: %s\n",
		appt.StringField("name"),
		appt.StringField("doctor"),
		appt.StringField("department"),
		appt.StringField("date"),
		appt.StringField("time"),
		appt.ID(),
	))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}
	return nil
}
