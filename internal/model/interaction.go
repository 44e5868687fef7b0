package model

import "time"

// Event types stored in the interaction log.
const (
	EventStart             = "start"
	EventFAQAnswer         = "faq_answer"
	EventInstallAnswer     = "install_answer"
	EventInstallMenu       = "install_menu"
	EventMainMenuOpen      = "main_menu_open"
	EventSupportStart      = "support_start"
	EventSupportCancel     = "support_cancel"
	EventSupportSubmit     = "support_submit"
	EventSupportNonText    = "support_non_text"
	EventSupportResolved   = "support_resolved"
	EventSupportReminder   = "support_reminder"
	EventFallbackMessage   = "fallback_message"
	EventFallbackCallback  = "fallback_callback"
	EventStatsRequest      = "stats_request"
	EventFeedbackHelpful   = "feedback_helpful"
	EventFeedbackUnhelpful = "feedback_unhelpful"
)

// Interaction is one logged user/bot exchange event. Rows are append-only and
// never mutated after creation.
type Interaction struct {
	ID         uint  `gorm:"primaryKey"`
	TelegramID int64 `gorm:"index"`
	Username   string
	ChatID     int64
	Event      string `gorm:"index"`
	Subject    string
	Matched    bool
	Query      string
	CreatedAt  time.Time `gorm:"index"`
}
