// internal/services/reminder_service.go
package services

import (
	"context"
	"fmt"
	"html"
	"log"
	"time"

	"opsboard/internal/models"
	"opsboard/internal/repositories"
	"opsboard/internal/utils"
)

const reminderBatch = 50

// ReminderService sweeps tasks whose reminder is due and notifies the
// assignee by email and telegram. Every task is reminded at most once per
// reminder_at value (last_reminded_at gate in the repository query).
type ReminderService struct {
	tasks    repositories.TaskRepository
	users    repositories.UserRepository
	email    EmailService
	tg       *TelegramService
	interval time.Duration
}

func NewReminderService(
	tasks repositories.TaskRepository,
	users repositories.UserRepository,
	email EmailService,
	tg *TelegramService,
	interval time.Duration,
) *ReminderService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderService{tasks: tasks, users: users, email: email, tg: tg, interval: interval}
}

// Run blocks until ctx is cancelled.
func (s *ReminderService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

func (s *ReminderService) Sweep(ctx context.Context) {
	due, err := s.tasks.ListDueForReminder(ctx, reminderBatch)
	if err != nil {
		log.Printf("[reminder][sweep][err] %v", err)
		return
	}
	for i := range due {
		task := &due[i]
		s.notify(ctx, task)
		if err := s.tasks.SetReminderFired(ctx, task.ID); err != nil {
			log.Printf("[reminder][fired][err] task=%d: %v", task.ID, err)
		}
	}
	if len(due) > 0 {
		log.Printf("[reminder][sweep][ok] notified=%d", len(due))
	}
}

func (s *ReminderService) notify(ctx context.Context, task *models.Task) {
	recipient := task.CreatedBy
	if task.AssignedTo != nil {
		recipient = *task.AssignedTo
	}

	if s.email != nil {
		email, err := s.users.Email(ctx, recipient)
		if err != nil {
			log.Printf("[reminder][email][err] task=%d user=%d: %v", task.ID, recipient, err)
		} else if err := utils.Retry(3, 500*time.Millisecond, func() error {
			return s.email.SendTaskReminder(email, task)
		}); err != nil {
			log.Printf("[reminder][email][err] task=%d to=%s: %v", task.ID, email, err)
		}
	}

	chatID, allow, err := s.users.TelegramSettings(ctx, recipient)
	if err != nil {
		log.Printf("[reminder][tg][err] task=%d user=%d: %v", task.ID, recipient, err)
		return
	}
	if !allow || chatID == 0 {
		return
	}
	text := fmt.Sprintf("⏰ Reminder\n• <b>%s</b>\n• Status: <code>%s</code>\n• Priority: <code>%s</code>",
		html.EscapeString(task.Title), task.Status, task.Priority)
	if err := utils.Retry(3, 500*time.Millisecond, func() error {
		return s.tg.SendMessage(chatID, text)
	}); err != nil {
		log.Printf("[reminder][tg][err] task=%d chat=%d: %v", task.ID, chatID, err)
	}
}
