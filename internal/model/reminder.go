package model

import "time"

// ReminderState tracks per-user inactivity used to throttle support nudges.
// Any inbound activity resets ReminderCount to zero; the count never exceeds
// the configured maximum.
type ReminderState struct {
	ID             uint  `gorm:"primaryKey"`
	ChatID         int64 `gorm:"uniqueIndex:idx_reminder_chat_user"`
	TelegramID     int64 `gorm:"uniqueIndex:idx_reminder_chat_user"`
	LastActivityAt time.Time
	ReminderCount  int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
