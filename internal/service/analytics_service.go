package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"faqbot/internal/faq"
	"faqbot/internal/model"
	"faqbot/internal/repository"
)

// AnalyticsService records interactions and renders the /stats summary.
type AnalyticsService struct {
	repo    *repository.InteractionRepository
	catalog *faq.Catalog
	log     *zerolog.Logger
}

func NewAnalyticsService(repo *repository.InteractionRepository, catalog *faq.Catalog, log *zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, catalog: catalog, log: log}
}

// Record appends one interaction. A storage failure is logged and swallowed:
// analytics must never block the user-facing flow.
func (s *AnalyticsService) Record(ctx context.Context, rec model.Interaction) {
	if err := s.repo.Record(ctx, &rec); err != nil {
		s.log.Error().Err(err).Str("event", rec.Event).Msg("record interaction")
	}
}

// Summary aggregates the trailing window and renders it as Telegram HTML.
func (s *AnalyticsService) Summary(ctx context.Context, now time.Time, days int) (string, error) {
	since := now.AddDate(0, 0, -days)
	summary, err := s.repo.Summarize(ctx, since)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📊 <b>Статистика за %d дней</b>\n", days))
	builder.WriteString(fmt.Sprintf("События: %d\n", summary.Total))
	builder.WriteString(fmt.Sprintf("Уникальные пользователи: %d\n", summary.UniqueUsers))
	builder.WriteString(fmt.Sprintf("Распознано: %d · без ответа: %d\n", summary.Matched, summary.Unmatched))

	if len(summary.ByEvent) > 0 {
		builder.WriteString("\n<b>По событиям:</b>\n")
		for _, row := range summary.ByEvent {
			builder.WriteString(fmt.Sprintf("• %s: %d\n", row.Event, row.Count))
		}
	}
	if len(summary.TopFAQ) > 0 {
		builder.WriteString("\n<b>Топ FAQ:</b>\n")
		for _, row := range summary.TopFAQ {
			builder.WriteString(fmt.Sprintf("• %s: %d\n", s.catalog.Label(row.Subject), row.Count))
		}
	}
	if len(summary.TopInstall) > 0 {
		builder.WriteString("\n<b>Топ установки:</b>\n")
		for _, row := range summary.TopInstall {
			builder.WriteString(fmt.Sprintf("• %s: %d\n", s.catalog.Label(row.Subject), row.Count))
		}
	}

	builder.WriteString(fmt.Sprintf("\nОтзывы: помогло %d, не помогло %d", summary.Helpful, summary.Unhelpful))

	return strings.TrimSpace(builder.String()), nil
}
