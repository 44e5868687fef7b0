package faq

// Default returns the built-in catalog used when no FAQ_PATH is configured.
func Default() *Catalog {
	catalog := &Catalog{
		Main: []Entry{
			{
				Key:      KeyBrokenKeys,
				Label:    "Не работает ни один из ключей",
				Triggers: []string{"ключ", "не работает", "не подключается"},
				Text: "1) Проверьте, что интернет работает без VPN.\n" +
					"2) Если проблема остаётся, запросите новый ключ у поддержки @modern_1mctech",
				Media: &Media{Path: "media/faq1.png", Type: MediaPhoto},
			},
			{
				Key:      KeyRenew,
				Label:    "Как продлить подписку",
				Triggers: []string{"продлить", "подписк", "оплат"},
				Text: "Подписку можно продлить через менеджера или личный кабинет.\n" +
					"Если у вас нет ссылки на оплату, напишите в поддержку — пришлём её.",
				Media: &Media{Path: "media/faq2.png", Type: MediaPhoto},
			},
			{
				Key:      KeyInvite,
				Label:    "Как пригласить человека",
				Triggers: []string{"пригласить", "приглашение", "друг"},
				Text: "Откройте бота @LockDown_VPN_Bbot → Главная → Пригласить друга.\n" +
					"Скопируйте ссылку-приглашение и отправьте её человеку.",
				Media: &Media{Path: "media/faq3.png", Type: MediaPhoto},
			},
		},
		Install: []Entry{
			{
				Key:      KeyInstallIOS,
				Label:    "iOS",
				Triggers: []string{"ios", "iphone", "айфон"},
				Text: "1) Откройте App Store и установите приложение VPN.\n" +
					"2) Запустите приложение и добавьте ключ из письма/чата.\n" +
					"3) Включите VPN и подтвердите добавление конфигурации.",
				Media: &Media{Path: "media/install_ios.mp4", Type: MediaVideo},
			},
			{
				Key:      KeyInstallAndroid,
				Label:    "Android",
				Triggers: []string{"android", "андроид"},
				Text: "1) Установите приложение из Google Play.\n" +
					"2) Импортируйте ключ и разрешите создание VPN.\n" +
					"3) Включите VPN в приложении.",
				Media: &Media{Path: "media/install_android.mp4", Type: MediaVideo},
			},
			{
				Key:      KeyInstallWindows,
				Label:    "Windows",
				Triggers: []string{"windows", "виндовс"},
				Text: "1) Установите приложение для Windows.\n" +
					"2) Добавьте ключ через кнопку Import.\n" +
					"3) Подключитесь и проверьте статус.",
				Media: &Media{Path: "media/install_windows.mp4", Type: MediaVideo},
			},
			{
				Key:      KeyInstallMacOS,
				Label:    "macOS",
				Triggers: []string{"macos", "мак"},
				Text: "1) Установите приложение для macOS.\n" +
					"2) Импортируйте ключ и разрешите системное расширение, если нужно.\n" +
					"3) Включите VPN и проверьте соединение.",
				Media: &Media{Path: "media/install_macos.mp4", Type: MediaVideo},
			},
			{
				Key:      KeyInstallLinux,
				Label:    "Linux",
				Triggers: []string{"linux", "линукс"},
				Text: "1) Установите клиент согласно вашей системе.\n" +
					"2) Импортируйте ключ через CLI или GUI.\n" +
					"3) Подключитесь и проверьте внешний IP.",
				Media: &Media{Path: "media/install_linux.mp4", Type: MediaVideo},
			},
		},
	}
	catalog.index()
	return catalog
}
