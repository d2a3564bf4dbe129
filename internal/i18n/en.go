package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	"schedule.title": "Schedule",
	"schedule.bring": "What to bring",

	"lessons.count":  "Number of lessons",
	"lessons.lesson": "Lesson %d",
	"lessons.edit":   "✏️",

	"subject.bring": "What to bring",
	"subject.item":  "Item %d",

	"checklist.title": "What to bring",
	"checklist.back":  "Back",
	"checklist.empty": "Nothing to bring",

	"status.saved_day":     "Saved: %s",
	"status.saved_subject": "Saved: %s",

	"common.save": "Save",

	"keys.move":   "move",
	"keys.select": "select",
	"keys.back":   "back",
	"keys.edit":   "items",
	"keys.quit":   "quit",

	"repl.help":          "commands: schedule | checklist [day] | day <day> = a; b | subject <subject> = a; b | help | exit",
	"repl.unknown":       "unknown command: %s",
	"repl.usage_day":     "usage: day <day> = subject; subject",
	"repl.usage_subject": "usage: subject <subject> = item; item",
	"repl.saved":         "saved",
	"repl.ignored":       "no such day: %s",
}
