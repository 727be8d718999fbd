package faq

// DefaultEntries returns the built-in OptFM corpus used when no persisted
// corpus exists yet, or when the caller decides to fall back after a failed
// load.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:       1,
			Question: "Какие продукты вы предлагаете?",
			Keywords: []string{"продукты", "товары", "ассортимент", "что продаете", "каталог", "есть", "предлагаете", "продаете"},
			Answer: "Компания OptFM предлагает широкий ассортимент продуктов для вашего бизнеса. У нас есть:\n\n" +
				"• Промышленное оборудование\n• Электронные компоненты\n• Инструменты и материалы\n• Специализированные решения\n\n" +
				"Для получения актуального прайса и подробной информации, напишите ваш конкретный запрос.",
		},
		{
			ID:       2,
			Question: "Как с вами связаться?",
			Keywords: []string{"контакты", "связаться", "телефон", "email", "адрес", "где находитесь"},
			Answer: "Связаться с OptFM можно следующими способами:\n\n" +
				"📞 Телефон: +7 (XXX) XXX-XX-XX\n📧 Email: info@optfm.ru\n🌐 Сайт: www.optfm.ru\n📍 Адрес: [Адрес офиса]\n\n" +
				"⏰ Режим работы: Пн-Пт 9:00-18:00\n\nДля срочных вопросов оставьте заявку, и наш менеджер свяжется с вами в ближайшее время.",
		},
		{
			ID:       3,
			Question: "Какие у вас цены?",
			Keywords: []string{"цены", "стоимость", "прайс", "сколько стоит", "цена", "у вас", "ваши", "стоит"},
			Answer: "Цены на наши продукты зависят от объема заказа, спецификации и текущих рыночных условий. Для получения актуального прайса:\n\n" +
				"• Укажите конкретный продукт или категорию\n• Сообщите требуемое количество\n• Укажите сроки поставки\n\n" +
				"Я помогу найти подходящие варианты и передам ваш запрос менеджеру для расчета.",
		},
		{
			ID:       4,
			Question: "Есть ли доставка?",
			Keywords: []string{"доставка", "отправка", "транспорт", "курьер", "самовывоз"},
			Answer: "Да, OptFM предоставляет различные варианты доставки:\n\n" +
				"🚚 Доставка по городу\n📦 Отправка в регионы\n🏪 Самовывоз со склада\n\n" +
				"Стоимость и сроки доставки зависят от:\n• Места назначения\n• Веса и габаритов\n• Срочности\n\n" +
				"Уточните детали заказа, и я предоставлю информацию по доставке.",
		},
		{
			ID:       5,
			Question: "Какие гарантии вы предоставляете?",
			Keywords: []string{"гарантия", "возврат", "обмен", "качество", "сервис", "качеств", "гаранти"},
			Answer: "OptFM предоставляет полную гарантию на все продукты:\n\n" +
				"✅ Гарантийный срок согласно техническим условиям\n✅ Возможность возврата в течение 14 дней\n✅ Техническая поддержка\n✅ Сервисное обслуживание\n\n" +
				"Все товары сертифицированы и соответствуют российским стандартам качества.",
		},
		{
			ID:       6,
			Question: "Работаете ли вы с юридическими лицами?",
			Keywords: []string{"юридические лица", "организации", "компании", "бизнес", "опт"},
			Answer: "Да, OptFM работает как с физическими, так и с юридическими лицами:\n\n" +
				"🏢 Для организаций:\n• Безналичный расчет\n• Договорные отношения\n• Специальные условия для постоянных клиентов\n• Отсрочка платежа (по согласованию)\n\n" +
				"👤 Для частных лиц:\n• Наличный и безналичный расчет\n• Удобные способы оплаты\n\n" +
				"Оставьте заявку, и менеджер свяжется для обсуждения условий сотрудничества.",
		},
	}
}
