package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"faqbot/internal/model"
)

// ReminderRepository stores per-user reminder state. The bot's inbound path
// and the periodic check both go through it, so every mutation is a single
// guarded statement to avoid lost updates between a reset and an increment.
type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Touch records inbound activity: it upserts the state for the user and
// resets the reminder count to zero.
func (r *ReminderRepository) Touch(ctx context.Context, chatID, telegramID int64, at time.Time) error {
	db := r.db.WithContext(ctx)

	var state model.ReminderState
	err := db.Where("chat_id = ? AND telegram_id = ?", chatID, telegramID).First(&state).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"last_activity_at": at,
			"reminder_count":   0,
		}
		if err := db.Model(&state).Updates(updates).Error; err != nil {
			return fmt.Errorf("reset reminder state: %w", err)
		}
		return nil
	case err == gorm.ErrRecordNotFound:
		state = model.ReminderState{
			ChatID:         chatID,
			TelegramID:     telegramID,
			LastActivityAt: at,
		}
		if err := db.Create(&state).Error; err != nil {
			return fmt.Errorf("create reminder state: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("find reminder state: %w", err)
	}
}

// Due lists states whose last activity is at or before the cutoff and whose
// count has room below maxCount.
func (r *ReminderRepository) Due(ctx context.Context, cutoff time.Time, maxCount int) ([]model.ReminderState, error) {
	var states []model.ReminderState
	err := r.db.WithContext(ctx).
		Where("last_activity_at <= ? AND reminder_count < ?", cutoff, maxCount).
		Order("last_activity_at ASC").
		Find(&states).Error
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return states, nil
}

// MarkReminded increments the count for one state, refusing to pass maxCount
// or to touch a state whose last activity moved past the sweep's cutoff. It
// reports false when the state was reset or capped since it was read, which
// makes an inbound reset always win over a stale nudge.
func (r *ReminderRepository) MarkReminded(ctx context.Context, id uint, maxCount int, cutoff time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.ReminderState{}).
		Where("id = ? AND reminder_count < ? AND last_activity_at <= ?", id, maxCount, cutoff).
		Update("reminder_count", gorm.Expr("reminder_count + 1"))
	if res.Error != nil {
		return false, fmt.Errorf("increment reminder count: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Get returns the state for one user, or gorm.ErrRecordNotFound.
func (r *ReminderRepository) Get(ctx context.Context, chatID, telegramID int64) (*model.ReminderState, error) {
	var state model.ReminderState
	if err := r.db.WithContext(ctx).Where("chat_id = ? AND telegram_id = ?", chatID, telegramID).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}
