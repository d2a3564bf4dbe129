package i18n

// RuMessages Russian message catalog (the fixed display locale)
var RuMessages = map[string]string{
	"schedule.title": "Расписание",
	"schedule.bring": "Взять с собой",

	"lessons.count":  "Количество уроков",
	"lessons.lesson": "Урок %d",
	"lessons.edit":   "✏️",

	"subject.bring": "Взять с собой",
	"subject.item":  "Предмет %d",

	"checklist.title": "Взять с собой",
	"checklist.back":  "Назад",
	"checklist.empty": "Ничего не нужно",

	"status.saved_day":     "Сохранено: %s",
	"status.saved_subject": "Сохранено: %s",

	"common.save": "Сохранить",

	"keys.move":   "перейти",
	"keys.select": "выбрать",
	"keys.back":   "назад",
	"keys.edit":   "предметы",
	"keys.quit":   "выход",

	"repl.help":          "команды: schedule | checklist [день] | day <день> = a; b | subject <предмет> = a; b | help | exit",
	"repl.unknown":       "неизвестная команда: %s",
	"repl.usage_day":     "использование: day <день> = предмет; предмет",
	"repl.usage_subject": "использование: subject <предмет> = вещь; вещь",
	"repl.saved":         "сохранено",
	"repl.ignored":       "нет такого дня: %s",
}
