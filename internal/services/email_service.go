package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"opsboard/internal/models"
)

type EmailService interface {
	SendWelcomeEmail(email, name string) error
	SendTaskReminder(email string, task *models.Task) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendWelcomeEmail(email, name string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Opsboard")

	body := fmt.Sprintf(`
		<h2>Welcome to Opsboard, %s!</h2>
		<p>Your account has been created. Projects, tasks, prompts and linked
		accounts are waiting on the dashboard.</p>
	`, name)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	return nil
}

func (s *emailService) SendTaskReminder(email string, task *models.Task) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s", task.Title))

	deadline := "no deadline"
	if task.Deadline != nil {
		deadline = task.Deadline.Format("2006-01-02 15:04")
	}
	body := fmt.Sprintf(`
		<h3>Task reminder</h3>
		<p><strong>%s</strong></p>
		<p>Status: %s &middot; Priority: %s &middot; Deadline: %s</p>
	`, task.Title, task.Status, task.Priority, deadline)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send task reminder: %w", err)
	}
	return nil
}
