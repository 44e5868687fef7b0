package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"faqbot/internal/faq"
)

// Callback data for menu navigation and the support dialog. FAQ answer
// callbacks use the catalog entry keys directly.
const (
	cbMainMenu        = "main:menu"
	cbInstallMenu     = "main:install"
	cbInstallBack     = "install:back"
	cbSupportStart    = "support:start"
	cbSupportCancel   = "support:cancel"
	cbSupportResolved = "support:resolved"

	cbFeedbackYesPrefix = "feedback:yes:"
	cbFeedbackNoPrefix  = "feedback:no:"
)

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Не работает ни один из ключей", faq.KeyBrokenKeys),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Как установить приложение", cbInstallMenu),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Как продлить подписку", faq.KeyRenew),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Как пригласить человека", faq.KeyInvite),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Не нашли ответ на ваш вопрос", cbSupportStart),
		),
	)
}

func installMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("iOS", faq.KeyInstallIOS),
			tgbotapi.NewInlineKeyboardButtonData("Android", faq.KeyInstallAndroid),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Windows", faq.KeyInstallWindows),
			tgbotapi.NewInlineKeyboardButtonData("macOS", faq.KeyInstallMacOS),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Linux", faq.KeyInstallLinux),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Назад", cbInstallBack),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Ответ мне не подходит", cbSupportStart),
		),
	)
}

func supportKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отмена", cbSupportCancel),
		),
	)
}

func reminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Задача решена", cbSupportResolved),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Отмена", cbSupportCancel),
		),
	)
}

// answerKeyboard follows every FAQ answer: feedback buttons plus a way back.
func answerKeyboard(subject string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Помогло", cbFeedbackYesPrefix+subject),
			tgbotapi.NewInlineKeyboardButtonData("Не помогло", cbFeedbackNoPrefix+subject),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Главное меню", cbMainMenu),
		),
	)
}

func menuOnlyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Главное меню", cbMainMenu),
		),
	)
}
