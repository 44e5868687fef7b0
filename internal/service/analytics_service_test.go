package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/faq"
	"faqbot/internal/model"
	"faqbot/internal/repository"
)

func TestSummaryRendersCounts(t *testing.T) {
	repo := repository.NewInteractionRepository(newTestDB(t))
	svc := NewAnalyticsService(repo, faq.Default(), nopLogger())
	ctx := context.Background()

	svc.Record(ctx, model.Interaction{TelegramID: 1, Event: model.EventStart})
	svc.Record(ctx, model.Interaction{TelegramID: 1, Event: model.EventFAQAnswer, Subject: faq.KeyRenew, Matched: true})
	svc.Record(ctx, model.Interaction{TelegramID: 2, Event: model.EventFallbackMessage, Query: "???"})
	svc.Record(ctx, model.Interaction{TelegramID: 2, Event: model.EventFeedbackHelpful, Subject: faq.KeyRenew})

	text, err := svc.Summary(ctx, time.Now(), 7)
	require.NoError(t, err)

	assert.Contains(t, text, "Статистика за 7 дней")
	assert.Contains(t, text, "События: 4")
	assert.Contains(t, text, "Уникальные пользователи: 2")
	assert.Contains(t, text, "Распознано: 1 · без ответа: 1")
	// Subjects are rendered through their catalog labels.
	assert.Contains(t, text, "Как продлить подписку: 1")
	assert.Contains(t, text, "помогло 1, не помогло 0")
}

func TestSummaryIgnoresOldInteractions(t *testing.T) {
	repo := repository.NewInteractionRepository(newTestDB(t))
	svc := NewAnalyticsService(repo, faq.Default(), nopLogger())
	ctx := context.Background()

	svc.Record(ctx, model.Interaction{
		TelegramID: 1,
		Event:      model.EventFAQAnswer,
		Subject:    faq.KeyRenew,
		Matched:    true,
		CreatedAt:  time.Now().UTC().AddDate(0, 0, -10),
	})

	text, err := svc.Summary(ctx, time.Now(), 7)
	require.NoError(t, err)
	assert.Contains(t, text, "События: 0")
}
