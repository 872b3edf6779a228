package services

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"github.com/aureeture/careerhub/internal/config"
)

// EmailService sends transactional mail over SMTP. When no SMTP host is
// configured it logs and skips delivery, so local development works
// without mail credentials.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(cfg *config.Config) *EmailService {
	s := &EmailService{from: cfg.SMTPFrom}
	if cfg.SMTPHost != "" {
		s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return s
}

func (s *EmailService) SendSessionConfirmation(to, recipientName, title, otherPartyName string, start, end time.Time, meetingLink string, toMentor bool) error {
	subject := fmt.Sprintf("Session Confirmed: %s", title)
	if toMentor {
		subject = fmt.Sprintf("New Session Booked: %s", title)
	}
	body := sessionConfirmationBody(recipientName, title, otherPartyName, start, end, meetingLink, toMentor)
	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	if s.dialer == nil {
		log.Info().Str("to", to).Str("subject", subject).Msg("smtp not configured, skipping email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

func sessionConfirmationBody(recipientName, title, otherPartyName string, start, end time.Time, meetingLink string, toMentor bool) string {
	withLabel := "Your mentor"
	if toMentor {
		withLabel = "Student"
	}
	if recipientName == "" {
		recipientName = "there"
	}
	return fmt.Sprintf(`
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #6d28d9;">Session Confirmed</h2>
		<p>Hi %s,</p>
		<p>Your mentorship session has been confirmed.</p>
		<table style="border-collapse: collapse; width: 100%%;">
			<tr><td style="padding: 6px 12px 6px 0;"><b>Session</b></td><td>%s</td></tr>
			<tr><td style="padding: 6px 12px 6px 0;"><b>%s</b></td><td>%s</td></tr>
			<tr><td style="padding: 6px 12px 6px 0;"><b>Starts</b></td><td>%s</td></tr>
			<tr><td style="padding: 6px 12px 6px 0;"><b>Ends</b></td><td>%s</td></tr>
		</table>
		<p><a href="%s" style="display: inline-block; padding: 10px 20px; background: #6d28d9; color: #fff; text-decoration: none; border-radius: 6px;">Join Meeting</a></p>
		<p style="color: #6b7280; font-size: 12px;">You can join up to 15 minutes before the start time.</p>
	</div>`,
		recipientName,
		title,
		withLabel,
		otherPartyName,
		start.Format("Mon, 2 Jan 2006 15:04 MST"),
		end.Format("Mon, 2 Jan 2006 15:04 MST"),
		meetingLink,
	)
}
