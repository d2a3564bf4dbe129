package editor

import (
	"slices"
	"strconv"
	"strings"
)

// MaxLessons 单日课程字段数上限
// MaxLessons caps the number of lesson fields of one day
const MaxLessons = 16

// DaySaver 接收整日替换
// DaySaver accepts a whole-day replace
type DaySaver interface {
	SaveDay(day string, subjects []string)
}

// Lessons 日程编辑缓冲
// Lessons is the edit buffer of one day's subjects
type Lessons struct {
	day    string
	fields []string
}

// NewLessons creates a buffer pre-filled with the day's current subjects.
func NewLessons(day string, subjects []string) *Lessons {
	fields := slices.Clone(subjects)
	if len(fields) > MaxLessons {
		fields = fields[:MaxLessons]
	}
	return &Lessons{day: day, fields: fields}
}

// Day returns the edited day name.
func (l *Lessons) Day() string { return l.day }

// Count returns the number of lesson fields.
func (l *Lessons) Count() int { return len(l.fields) }

// SetCount resizes the buffer to n fields. Values at surviving indices are
// kept; new fields start blank. Negative counts become zero.
func (l *Lessons) SetCount(n int) {
	n = max(0, min(n, MaxLessons))
	if n <= len(l.fields) {
		l.fields = l.fields[:n:n]
		return
	}
	for len(l.fields) < n {
		l.fields = append(l.fields, "")
	}
}

// SetCountText parses text as the lesson count and resizes the buffer.
// Unparseable input counts as zero. It returns the resulting count.
func (l *Lessons) SetCountText(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		n = 0
	}
	l.SetCount(n)
	return l.Count()
}

// Set updates field i; out-of-range indices are ignored.
func (l *Lessons) Set(i int, text string) {
	if i < 0 || i >= len(l.fields) {
		return
	}
	l.fields[i] = text
}

// Get returns field i, or "" when out of range.
func (l *Lessons) Get(i int) string {
	if i < 0 || i >= len(l.fields) {
		return ""
	}
	return l.fields[i]
}

// Subjects returns every field in order, blanks included.
func (l *Lessons) Subjects() []string {
	return slices.Clone(l.fields)
}

// Save 保存到 saver（不过滤空白字段）
// Save hands every field, blanks included, to saver
func (l *Lessons) Save(saver DaySaver) {
	saver.SaveDay(l.day, l.Subjects())
}
