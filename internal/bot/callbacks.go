package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"faqbot/internal/model"
)

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb.From == nil || cb.Message == nil || cb.Message.Chat == nil {
		return nil
	}

	chatID := cb.Message.Chat.ID
	b.noteActivity(ctx, chatID, cb.From)

	data := cb.Data
	switch {
	case data == cbSupportStart:
		b.startSupportDialog(cb.From.ID)
		b.record(ctx, cb.From, chatID, model.EventSupportStart, "", false, "")
		b.ackCallback(cb.ID, "")
		return b.sendText(chatID, supportPromptText, supportKeyboard())

	case data == cbSupportCancel:
		b.clearSupportDialog(cb.From.ID)
		b.record(ctx, cb.From, chatID, model.EventSupportCancel, "", false, "")
		b.ackCallback(cb.ID, "")
		return b.sendText(chatID, supportCanceledText, mainMenuKeyboard())

	case data == cbSupportResolved:
		b.clearSupportDialog(cb.From.ID)
		b.record(ctx, cb.From, chatID, model.EventSupportResolved, "", false, "")
		b.ackCallback(cb.ID, "")
		return b.sendText(chatID, supportResolvedText, mainMenuKeyboard())

	case data == cbInstallMenu:
		b.record(ctx, cb.From, chatID, model.EventInstallMenu, "", false, "")
		b.ackCallback(cb.ID, "")
		return b.sendText(chatID, "Выберите платформу:", installMenuKeyboard())

	case data == cbMainMenu || data == cbInstallBack:
		b.clearSupportDialog(cb.From.ID)
		b.record(ctx, cb.From, chatID, model.EventMainMenuOpen, data, false, "")
		b.ackCallback(cb.ID, "")
		return b.sendText(chatID, greetingText, mainMenuKeyboard())

	case strings.HasPrefix(data, cbFeedbackYesPrefix):
		subject := strings.TrimPrefix(data, cbFeedbackYesPrefix)
		b.record(ctx, cb.From, chatID, model.EventFeedbackHelpful, subject, false, "")
		b.collapseFeedbackButtons(chatID, cb.Message.MessageID)
		b.ackCallback(cb.ID, "Спасибо за отзыв!")
		return nil

	case strings.HasPrefix(data, cbFeedbackNoPrefix):
		subject := strings.TrimPrefix(data, cbFeedbackNoPrefix)
		b.record(ctx, cb.From, chatID, model.EventFeedbackUnhelpful, subject, false, "")
		b.collapseFeedbackButtons(chatID, cb.Message.MessageID)
		b.ackCallback(cb.ID, "Спасибо за отзыв!")
		return nil
	}

	if entry, ok := b.catalog.Get(data); ok {
		event := model.EventFAQAnswer
		if entry.Install() {
			event = model.EventInstallAnswer
		}
		b.record(ctx, cb.From, chatID, event, entry.Key, true, "")
		b.ackCallback(cb.ID, "")
		return b.sendAnswer(chatID, entry)
	}

	b.record(ctx, cb.From, chatID, model.EventFallbackCallback, data, false, "")
	b.ackCallback(cb.ID, "Неизвестная команда.")
	return nil
}

func (b *Bot) ackCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.log.Warn().Err(err).Msg("callback ack")
	}
}

// collapseFeedbackButtons replaces the feedback row with a menu-only row
// after the user voted.
func (b *Bot) collapseFeedbackButtons(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, menuOnlyKeyboard())
	if _, err := b.api.Request(edit); err != nil {
		b.log.Warn().Err(err).Msg("update feedback menu")
	}
}
