package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"faqbot/internal/model"
)

// SubjectCount is one row of a grouped subject breakdown.
type SubjectCount struct {
	Subject string
	Count   int64
}

// EventCount is one row of a grouped event breakdown.
type EventCount struct {
	Event string
	Count int64
}

// Summary aggregates the interaction log over a trailing window.
type Summary struct {
	Since       time.Time
	Total       int64
	Matched     int64
	Unmatched   int64
	UniqueUsers int64
	ByEvent     []EventCount
	TopFAQ      []SubjectCount
	TopInstall  []SubjectCount
	Helpful     int64
	Unhelpful   int64
}

// InteractionRepository appends to and aggregates the interaction log.
type InteractionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

func (r *InteractionRepository) Record(ctx context.Context, rec *model.Interaction) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	return nil
}

func (r *InteractionRepository) window(ctx context.Context, since time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Interaction{}).Where("created_at >= ?", since)
}

// Summarize aggregates interactions recorded at or after since. Unmatched
// counts the events that end up forwarded to the admin chat.
func (r *InteractionRepository) Summarize(ctx context.Context, since time.Time) (*Summary, error) {
	summary := &Summary{Since: since}

	if err := r.window(ctx, since).Count(&summary.Total).Error; err != nil {
		return nil, fmt.Errorf("count total: %w", err)
	}

	if err := r.window(ctx, since).
		Where("matched = ?", true).
		Count(&summary.Matched).Error; err != nil {
		return nil, fmt.Errorf("count matched: %w", err)
	}

	unresolved := []string{model.EventFallbackMessage, model.EventSupportSubmit}
	if err := r.window(ctx, since).
		Where("event IN ?", unresolved).
		Count(&summary.Unmatched).Error; err != nil {
		return nil, fmt.Errorf("count unmatched: %w", err)
	}

	if err := r.window(ctx, since).
		Where("telegram_id <> 0").
		Distinct("telegram_id").
		Count(&summary.UniqueUsers).Error; err != nil {
		return nil, fmt.Errorf("count unique users: %w", err)
	}

	if err := r.window(ctx, since).
		Select("event, COUNT(*) AS count").
		Group("event").
		Order("count DESC").
		Scan(&summary.ByEvent).Error; err != nil {
		return nil, fmt.Errorf("count by event: %w", err)
	}

	var err error
	if summary.TopFAQ, err = r.topSubjects(ctx, model.EventFAQAnswer, since); err != nil {
		return nil, err
	}
	if summary.TopInstall, err = r.topSubjects(ctx, model.EventInstallAnswer, since); err != nil {
		return nil, err
	}

	if err := r.window(ctx, since).
		Where("event = ?", model.EventFeedbackHelpful).
		Count(&summary.Helpful).Error; err != nil {
		return nil, fmt.Errorf("count helpful: %w", err)
	}
	if err := r.window(ctx, since).
		Where("event = ?", model.EventFeedbackUnhelpful).
		Count(&summary.Unhelpful).Error; err != nil {
		return nil, fmt.Errorf("count unhelpful: %w", err)
	}

	return summary, nil
}

func (r *InteractionRepository) topSubjects(ctx context.Context, event string, since time.Time) ([]SubjectCount, error) {
	var rows []SubjectCount
	err := r.window(ctx, since).
		Select("subject, COUNT(*) AS count").
		Where("event = ?", event).
		Group("subject").
		Order("count DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("top subjects for %s: %w", event, err)
	}
	return rows, nil
}
