package bot

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"faqbot/internal/config"
	"faqbot/internal/faq"
	"faqbot/internal/model"
	"faqbot/internal/repository"
	"faqbot/internal/service"
)

const (
	greetingText = "Здравствуйте! Мы готовы ответить на любой ваш вопрос. " +
		"Если вы его не нашли в данном боте, оставьте обращение или напишите @modern_1mctech"
	supportPromptText   = "Опишите проблему одним сообщением — мы передадим её в поддержку."
	supportThanksText   = "Спасибо! Мы уже получили ваше обращение."
	supportCanceledText = "Запрос отменён."
	supportResolvedText = "Отлично! Если появятся вопросы — напишите нам в любое время."
	reminderText        = "Если нужна помощь, опишите проблему одним сообщением — мы передадим её в поддержку."
	fallbackText        = "Мы не нашли готовый ответ и передали ваш вопрос в поддержку. " +
		"Выберите пункт из меню или опишите проблему подробнее."
)

// Bot aggregates the Telegram API with the FAQ catalog and services.
type Bot struct {
	api       *tgbotapi.BotAPI
	userRepo  *repository.UserRepository
	analytics *service.AnalyticsService
	reminders *service.ReminderService
	catalog   *faq.Catalog
	cfg       *config.Config
	log       *zerolog.Logger

	supportWaiting map[int64]bool
	lastMessage    map[int64]int
	mu             sync.Mutex
}

// Compile-time check: the bot is the reminder dispatch target.
var _ service.Notifier = (*Bot)(nil)

func New(token string, userRepo *repository.UserRepository, analytics *service.AnalyticsService, reminders *service.ReminderService, catalog *faq.Catalog, cfg *config.Config, log *zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Info().Str("account", api.Self.UserName).Msg("bot authorized")

	return &Bot{
		api:            api,
		userRepo:       userRepo,
		analytics:      analytics,
		reminders:      reminders,
		catalog:        catalog,
		cfg:            cfg,
		log:            log,
		supportWaiting: make(map[int64]bool),
		lastMessage:    make(map[int64]int),
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	b.log.Info().Msg("start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				b.log.Error().Err(err).Msg("handle callback")
			}
		case update.Message != nil:
			if err := b.handleMessage(ctx, update.Message); err != nil {
				b.log.Error().Err(err).Msg("handle message")
			}
		}
	}

	// The update channel closes once polling stops, normally because the
	// context was cancelled.
	return ctx.Err()
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.From == nil || msg.Chat == nil {
		return nil
	}

	b.noteActivity(ctx, msg.Chat.ID, msg.From)

	if msg.IsCommand() {
		b.log.Info().Int64("user", msg.From.ID).Str("command", msg.Command()).Msg("command")
		return b.handleCommand(ctx, msg)
	}

	if b.inSupportDialog(msg.From.ID) {
		return b.handleSupportMessage(ctx, msg)
	}

	if msg.Text == "" {
		return nil
	}

	if entry, ok := b.catalog.Match(msg.Text); ok {
		event := model.EventFAQAnswer
		if entry.Install() {
			event = model.EventInstallAnswer
		}
		b.record(ctx, msg.From, msg.Chat.ID, event, entry.Key, true, msg.Text)
		return b.sendAnswer(msg.Chat.ID, entry)
	}

	b.record(ctx, msg.From, msg.Chat.ID, model.EventFallbackMessage, "", false, msg.Text)
	b.forwardToAdmin(msg.From, msg.Text)
	return b.sendText(msg.Chat.ID, fallbackText, mainMenuKeyboard())
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		b.clearSupportDialog(msg.From.ID)
		b.record(ctx, msg.From, msg.Chat.ID, model.EventStart, "", false, "")
		return b.sendText(msg.Chat.ID, greetingText, mainMenuKeyboard())
	case "stats":
		return b.handleStats(ctx, msg)
	default:
		return b.sendText(msg.Chat.ID, "Команда не поддерживается.", mainMenuKeyboard())
	}
}

func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.Chat.ID != b.cfg.AdminChatID && msg.From.ID != b.cfg.AdminChatID {
		return b.sendText(msg.Chat.ID, "Команда доступна только администратору.", mainMenuKeyboard())
	}

	text, err := b.analytics.Summary(ctx, time.Now(), 7)
	if err != nil {
		b.log.Error().Err(err).Msg("build stats summary")
		return b.sendText(msg.Chat.ID, "Не удалось собрать статистику, попробуйте позже.", mainMenuKeyboard())
	}
	b.record(ctx, msg.From, msg.Chat.ID, model.EventStatsRequest, "", false, "")
	return b.sendText(msg.Chat.ID, text, mainMenuKeyboard())
}

func (b *Bot) handleSupportMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if strings.EqualFold(strings.TrimSpace(msg.Text), "отмена") {
		b.clearSupportDialog(msg.From.ID)
		b.record(ctx, msg.From, msg.Chat.ID, model.EventSupportCancel, "", false, "")
		return b.sendText(msg.Chat.ID, supportCanceledText, mainMenuKeyboard())
	}

	if msg.Text == "" {
		b.record(ctx, msg.From, msg.Chat.ID, model.EventSupportNonText, "", false, "")
		return b.sendText(msg.Chat.ID, "Опишите проблему текстом.", supportKeyboard())
	}

	b.record(ctx, msg.From, msg.Chat.ID, model.EventSupportSubmit, "", false, msg.Text)
	b.clearSupportDialog(msg.From.ID)
	b.forwardToAdmin(msg.From, msg.Text)
	return b.sendText(msg.Chat.ID, supportThanksText, mainMenuKeyboard())
}

// SendSupportReminder delivers one inactivity nudge. It is called from the
// periodic check, never from the inbound path.
func (b *Bot) SendSupportReminder(ctx context.Context, state model.ReminderState) error {
	b.analytics.Record(ctx, model.Interaction{
		TelegramID: state.TelegramID,
		ChatID:     state.ChatID,
		Event:      model.EventSupportReminder,
		Query:      fmt.Sprintf("count=%d", state.ReminderCount),
	})
	return b.sendText(state.ChatID, reminderText, reminderKeyboard())
}

// forwardToAdmin relays an unresolved query to the admin chat. Failures are
// logged and swallowed so the user-facing flow is never blocked.
func (b *Bot) forwardToAdmin(from *tgbotapi.User, text string) {
	msg := tgbotapi.NewMessage(b.cfg.AdminChatID, supportPayload(from, text))
	if _, err := b.api.Send(msg); err != nil {
		b.log.Warn().Err(err).Msg("forward to admin chat")
	}
}

// supportPayload formats an unresolved query for the admin chat.
func supportPayload(from *tgbotapi.User, text string) string {
	userID := "—"
	username := "—"
	if from != nil {
		userID = fmt.Sprintf("%d", from.ID)
		if from.UserName != "" {
			username = "@" + from.UserName
		}
	}
	if strings.TrimSpace(text) == "" {
		text = "<не текстовое сообщение>"
	}
	return fmt.Sprintf("#SUPREQUEST #USER%s\nИмя: %s\nТекст: %s", userID, username, text)
}

type mediaKind int

const (
	mediaNone mediaKind = iota
	mediaPhoto
	mediaVideo
)

// resolveMedia decides how an answer is delivered: with its photo or video
// attachment, or text-only when there is no media, the referenced file is
// missing, or the media type is unknown.
func (b *Bot) resolveMedia(entry *faq.Entry) mediaKind {
	if entry.Media == nil {
		return mediaNone
	}
	if _, err := os.Stat(entry.Media.Path); err != nil {
		b.log.Warn().Str("path", entry.Media.Path).Msg("media file not found")
		return mediaNone
	}
	switch entry.Media.Type {
	case faq.MediaPhoto:
		return mediaPhoto
	case faq.MediaVideo:
		return mediaVideo
	default:
		b.log.Warn().Str("type", entry.Media.Type).Msg("unknown media type")
		return mediaNone
	}
}

// sendAnswer sends an FAQ answer, attaching media when the referenced file
// exists and falling back to a plain text reply when it does not.
func (b *Bot) sendAnswer(chatID int64, entry *faq.Entry) error {
	markup := answerKeyboard(entry.Key)

	var sent tgbotapi.Message
	var err error
	switch b.resolveMedia(entry) {
	case mediaPhoto:
		b.cleanupPrevious(chatID)
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FilePath(entry.Media.Path))
		photo.Caption = entry.Text
		photo.ReplyMarkup = markup
		sent, err = b.api.Send(photo)
	case mediaVideo:
		b.cleanupPrevious(chatID)
		video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(entry.Media.Path))
		video.Caption = entry.Text
		video.ReplyMarkup = markup
		sent, err = b.api.Send(video)
	default:
		return b.sendText(chatID, entry.Text, markup)
	}
	if err != nil {
		return err
	}
	b.rememberMessage(chatID, sent.MessageID)
	return nil
}

// sendText sends an HTML message, replacing the previous bot message in the
// chat to keep the dialog to a single active menu.
func (b *Bot) sendText(chatID int64, text string, markup interface{}) error {
	b.cleanupPrevious(chatID)
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	sent, err := b.api.Send(msg)
	if err != nil {
		return err
	}
	b.rememberMessage(chatID, sent.MessageID)
	return nil
}

func (b *Bot) cleanupPrevious(chatID int64) {
	b.mu.Lock()
	messageID, ok := b.lastMessage[chatID]
	delete(b.lastMessage, chatID)
	b.mu.Unlock()
	if !ok {
		return
	}
	if _, err := b.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		b.log.Warn().Err(err).Int64("chat", chatID).Int("message", messageID).Msg("delete previous message")
	}
}

func (b *Bot) rememberMessage(chatID int64, messageID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastMessage[chatID] = messageID
}

// noteActivity upserts the user and resets their reminder count. Every
// inbound update goes through here.
func (b *Bot) noteActivity(ctx context.Context, chatID int64, from *tgbotapi.User) {
	if _, err := b.userRepo.UpsertFromTelegram(ctx, from.ID, from.FirstName, from.LastName, from.UserName); err != nil {
		b.log.Error().Err(err).Int64("user", from.ID).Msg("upsert user")
	}
	if err := b.reminders.Activity(ctx, chatID, from.ID, time.Now()); err != nil {
		b.log.Error().Err(err).Int64("user", from.ID).Msg("touch reminder state")
	}
}

func (b *Bot) record(ctx context.Context, from *tgbotapi.User, chatID int64, event, subject string, matched bool, query string) {
	rec := model.Interaction{
		ChatID:  chatID,
		Event:   event,
		Subject: subject,
		Matched: matched,
		Query:   textPreview(query, 200),
	}
	if from != nil {
		rec.TelegramID = from.ID
		rec.Username = from.UserName
	}
	b.analytics.Record(ctx, rec)
}

func (b *Bot) inSupportDialog(userID int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.supportWaiting[userID]
}

func (b *Bot) startSupportDialog(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.supportWaiting[userID] = true
}

func (b *Bot) clearSupportDialog(userID int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.supportWaiting, userID)
}

func textPreview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
