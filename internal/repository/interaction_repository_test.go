package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/model"
)

func TestRecordSetsTimestamp(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()

	rec := model.Interaction{TelegramID: 1, Event: model.EventStart}
	require.NoError(t, repo.Record(ctx, &rec))
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestSummarizeWindow(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -7)

	seed := []model.Interaction{
		{TelegramID: 1, Event: model.EventStart, CreatedAt: now.Add(-time.Hour)},
		{TelegramID: 1, Event: model.EventFAQAnswer, Subject: "main:keys", Matched: true, CreatedAt: now.Add(-time.Hour)},
		{TelegramID: 2, Event: model.EventFAQAnswer, Subject: "main:keys", Matched: true, CreatedAt: now.Add(-2 * time.Hour)},
		{TelegramID: 2, Event: model.EventFAQAnswer, Subject: "main:renew", Matched: true, CreatedAt: now.Add(-3 * time.Hour)},
		{TelegramID: 3, Event: model.EventInstallAnswer, Subject: "install:ios", Matched: true, CreatedAt: now.Add(-4 * time.Hour)},
		{TelegramID: 3, Event: model.EventFallbackMessage, Query: "что-то странное", CreatedAt: now.Add(-time.Hour)},
		{TelegramID: 1, Event: model.EventSupportSubmit, Query: "нужна помощь", CreatedAt: now.Add(-time.Hour)},
		{TelegramID: 1, Event: model.EventFeedbackHelpful, Subject: "main:keys", CreatedAt: now.Add(-time.Minute)},
		{TelegramID: 2, Event: model.EventFeedbackUnhelpful, Subject: "main:renew", CreatedAt: now.Add(-time.Minute)},
		// Outside the window: must not be counted.
		{TelegramID: 9, Event: model.EventFAQAnswer, Subject: "main:keys", Matched: true, CreatedAt: now.AddDate(0, 0, -8)},
	}
	for i := range seed {
		require.NoError(t, repo.Record(ctx, &seed[i]))
	}

	summary, err := repo.Summarize(ctx, since)
	require.NoError(t, err)

	assert.Equal(t, int64(9), summary.Total)
	assert.Equal(t, int64(4), summary.Matched)
	assert.Equal(t, int64(2), summary.Unmatched)
	assert.Equal(t, int64(3), summary.UniqueUsers)
	assert.Equal(t, int64(1), summary.Helpful)
	assert.Equal(t, int64(1), summary.Unhelpful)

	require.NotEmpty(t, summary.TopFAQ)
	assert.Equal(t, "main:keys", summary.TopFAQ[0].Subject)
	assert.Equal(t, int64(2), summary.TopFAQ[0].Count)

	require.Len(t, summary.TopInstall, 1)
	assert.Equal(t, "install:ios", summary.TopInstall[0].Subject)

	require.NotEmpty(t, summary.ByEvent)
	assert.Equal(t, model.EventFAQAnswer, summary.ByEvent[0].Event)
	assert.Equal(t, int64(3), summary.ByEvent[0].Count)
}

func TestSummarizeEmpty(t *testing.T) {
	repo := NewInteractionRepository(newTestDB(t))

	summary, err := repo.Summarize(context.Background(), time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)

	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.UniqueUsers)
	assert.Empty(t, summary.TopFAQ)
	assert.Empty(t, summary.ByEvent)
}
