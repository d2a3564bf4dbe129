// Package nav models the app's destinations as a closed set of typed values
// plus a back stack.
package nav

import (
	"net/url"
	"strings"

	"schoolbag/internal/schedule"
)

// Kind 目的地类型
// Kind identifies a destination
type Kind int

const (
	KindSchedule Kind = iota
	KindLessonsEditor
	KindSubjectEditor
	KindChecklist
)

const (
	routeSchedule      = "schedule"
	routeLessonsEditor = "lessons_editor"
	routeSubjectEditor = "subject_editor"
	routeChecklist     = "school_checklist"
)

func (k Kind) String() string {
	switch k {
	case KindSchedule:
		return routeSchedule
	case KindLessonsEditor:
		return routeLessonsEditor
	case KindSubjectEditor:
		return routeSubjectEditor
	case KindChecklist:
		return routeChecklist
	default:
		return "unknown"
	}
}

// Destination 目的地及其参数
// Destination is a screen together with its payload. Day is set only for
// KindLessonsEditor, Subject only for KindSubjectEditor.
type Destination struct {
	Kind    Kind
	Day     string
	Subject string
}

// Schedule is the start destination.
func Schedule() Destination { return Destination{Kind: KindSchedule} }

// LessonsEditor edits the subjects of day.
func LessonsEditor(day string) Destination {
	return Destination{Kind: KindLessonsEditor, Day: day}
}

// SubjectEditor edits the items of subject, which may be empty.
func SubjectEditor(subject string) Destination {
	return Destination{Kind: KindSubjectEditor, Subject: subject}
}

// Checklist shows the per-day items to bring.
func Checklist() Destination { return Destination{Kind: KindChecklist} }

// Route 返回字符串形式的路由
// Route returns the string form of d, e.g. "lessons_editor/Среда"
func (d Destination) Route() string {
	switch d.Kind {
	case KindLessonsEditor:
		return routeLessonsEditor + "/" + url.PathEscape(d.Day)
	case KindSubjectEditor:
		return routeSubjectEditor + "/" + url.PathEscape(d.Subject)
	default:
		return d.Kind.String()
	}
}

// ParseRoute 解析字符串路由
// ParseRoute parses the string form of a destination. A lessons editor route
// whose day is missing or not a weekday opens the first weekday. It reports
// false for an unknown route.
func ParseRoute(route string) (Destination, bool) {
	name, param, hasParam := strings.Cut(strings.TrimSpace(route), "/")
	if hasParam {
		if unescaped, err := url.PathUnescape(param); err == nil {
			param = unescaped
		}
	}

	switch name {
	case routeSchedule:
		return Schedule(), true
	case routeChecklist:
		return Checklist(), true
	case routeLessonsEditor:
		if !schedule.IsWeekday(param) {
			param = schedule.Weekdays[0]
		}
		return LessonsEditor(param), true
	case routeSubjectEditor:
		return SubjectEditor(param), true
	default:
		return Destination{}, false
	}
}
