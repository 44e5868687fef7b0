package bot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/faq"
)

func TestSupportPayload(t *testing.T) {
	from := &tgbotapi.User{ID: 42, UserName: "ivan"}
	payload := supportPayload(from, "не могу подключиться")

	assert.Contains(t, payload, "#SUPREQUEST #USER42")
	assert.Contains(t, payload, "@ivan")
	assert.Contains(t, payload, "не могу подключиться")
}

func TestSupportPayloadWithoutUsername(t *testing.T) {
	payload := supportPayload(&tgbotapi.User{ID: 7}, "вопрос")
	assert.Contains(t, payload, "#USER7")
	assert.Contains(t, payload, "Имя: —")
}

func TestSupportPayloadEmptyText(t *testing.T) {
	payload := supportPayload(nil, "  ")
	assert.Contains(t, payload, "#USER—")
	assert.Contains(t, payload, "<не текстовое сообщение>")
}

func TestTextPreview(t *testing.T) {
	assert.Equal(t, "короткий", textPreview("короткий", 200))

	long := strings.Repeat("д", 300)
	got := textPreview(long, 200)
	assert.Equal(t, 200, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestResolveMediaDegradesToText(t *testing.T) {
	logger := zerolog.Nop()
	b := &Bot{log: &logger}

	photoPath := filepath.Join(t.TempDir(), "answer.png")
	require.NoError(t, os.WriteFile(photoPath, []byte("png"), 0o644))
	videoPath := filepath.Join(t.TempDir(), "answer.mp4")
	require.NoError(t, os.WriteFile(videoPath, []byte("mp4"), 0o644))

	tests := []struct {
		name  string
		media *faq.Media
		want  mediaKind
	}{
		{"no media", nil, mediaNone},
		{"missing file", &faq.Media{Path: filepath.Join(t.TempDir(), "gone.png"), Type: faq.MediaPhoto}, mediaNone},
		{"unknown type", &faq.Media{Path: photoPath, Type: "sticker"}, mediaNone},
		{"photo", &faq.Media{Path: photoPath, Type: faq.MediaPhoto}, mediaPhoto},
		{"video", &faq.Media{Path: videoPath, Type: faq.MediaVideo}, mediaVideo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &faq.Entry{Key: "main:keys", Text: "ответ", Media: tt.media}
			assert.Equal(t, tt.want, b.resolveMedia(entry))
		})
	}
}

func TestAnswerKeyboardCarriesSubject(t *testing.T) {
	kb := answerKeyboard("main:renew")

	row := kb.InlineKeyboard[0]
	assert.Equal(t, cbFeedbackYesPrefix+"main:renew", *row[0].CallbackData)
	assert.Equal(t, cbFeedbackNoPrefix+"main:renew", *row[1].CallbackData)
}

func TestMainMenuTargetsCatalogKeys(t *testing.T) {
	kb := mainMenuKeyboard()

	var data []string
	for _, row := range kb.InlineKeyboard {
		for _, btn := range row {
			data = append(data, *btn.CallbackData)
		}
	}
	assert.Contains(t, data, "main:keys")
	assert.Contains(t, data, cbInstallMenu)
	assert.Contains(t, data, cbSupportStart)
}
