package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"faqbot/internal/model"
	"faqbot/internal/repository"
)

// Notifier delivers one support nudge. Implemented by the bot layer.
type Notifier interface {
	SendSupportReminder(ctx context.Context, state model.ReminderState) error
}

// ReminderService decides who gets a support nudge. A user is due when their
// last activity is at least the configured interval old and they received
// fewer than the configured maximum of nudges since that activity.
type ReminderService struct {
	repo     *repository.ReminderRepository
	interval time.Duration
	maxCount int
	log      *zerolog.Logger
}

func NewReminderService(repo *repository.ReminderRepository, interval time.Duration, maxCount int, log *zerolog.Logger) *ReminderService {
	return &ReminderService{repo: repo, interval: interval, maxCount: maxCount, log: log}
}

// Activity records inbound activity for a user, resetting their nudge count.
func (s *ReminderService) Activity(ctx context.Context, chatID, telegramID int64, at time.Time) error {
	return s.repo.Touch(ctx, chatID, telegramID, at)
}

// RunCheck sends at most one nudge per due user and returns how many went
// out. The count is incremented before sending so a concurrent reset wins
// over a stale nudge; a send failure is logged and does not stop the sweep.
func (s *ReminderService) RunCheck(ctx context.Context, now time.Time, notifier Notifier) (int, error) {
	cutoff := now.Add(-s.interval)
	states, err := s.repo.Due(ctx, cutoff, s.maxCount)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, state := range states {
		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		default:
		}

		ok, err := s.repo.MarkReminded(ctx, state.ID, s.maxCount, cutoff)
		if err != nil {
			s.log.Error().Err(err).Int64("chat_id", state.ChatID).Msg("mark reminded")
			continue
		}
		if !ok {
			continue
		}
		state.ReminderCount++

		if err := notifier.SendSupportReminder(ctx, state); err != nil {
			s.log.Warn().Err(err).Int64("chat_id", state.ChatID).Msg("send support reminder")
			continue
		}
		sent++
	}
	return sent, nil
}
