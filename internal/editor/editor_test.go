package editor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	day      string
	subjects []string
	subject  string
	items    []string
}

func (r *recorder) SaveDay(day string, subjects []string) {
	r.day, r.subjects = day, subjects
}

func (r *recorder) SaveSubject(subject string, items []string) {
	r.subject, r.items = subject, items
}

func TestLessons_ShrinkThenGrowPadsBlank(t *testing.T) {
	l := NewLessons("Понедельник", []string{"Математика", "Русский язык", "География", "Физ. культура"})

	l.SetCount(2)
	require.Equal(t, []string{"Математика", "Русский язык"}, l.Subjects())

	l.SetCount(4)
	require.Equal(t, []string{"Математика", "Русский язык", "", ""}, l.Subjects())
}

func TestLessons_SetCountText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"1000", MaxLessons},
	}
	for _, tt := range tests {
		l := NewLessons("Среда", []string{"a"})
		got := l.SetCountText(tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
		require.Len(t, l.Subjects(), tt.want)
	}
}

func TestLessons_SaveKeepsBlanks(t *testing.T) {
	l := NewLessons("Вторник", nil)
	l.SetCount(3)
	l.Set(0, "Химия")
	l.Set(2, " ")
	l.Set(7, "ignored")

	var r recorder
	l.Save(&r)
	require.Equal(t, "Вторник", r.day)
	require.Equal(t, []string{"Химия", "", " "}, r.subjects)
	require.Equal(t, "", l.Get(7))
}

func TestLessons_SetAfterShrinkDoesNotLeak(t *testing.T) {
	l := NewLessons("Среда", []string{"a", "b", "c"})
	l.SetCount(1)
	l.SetCount(3)
	require.Equal(t, []string{"a", "", ""}, l.Subjects())
}

func TestSubject_SaveFiltersBlanks(t *testing.T) {
	s := NewSubject("Литература", nil)
	for i, v := range []string{"Тетрадь", "", "Книга", ""} {
		s.Set(i, v)
	}

	var r recorder
	s.Save(&r)
	require.Equal(t, "Литература", r.subject)
	require.Equal(t, []string{"Тетрадь", "Книга"}, r.items)
}

func TestSubject_Slots(t *testing.T) {
	s := NewSubject("Физ. культура", []string{"Спортивная форма"})
	require.Equal(t, []string{"Спортивная форма", "", "", ""}, s.Slots())

	big := NewSubject("", []string{"1", "2", "3", "4", "5"})
	require.Equal(t, 5, big.Len())
	require.Equal(t, "", big.Name())
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, big.Items())
}

func TestSubject_WhitespaceIsBlank(t *testing.T) {
	s := NewSubject("Музыка", []string{"  ", "\t", " Ноты "})
	require.Equal(t, []string{" Ноты "}, s.Items())
}
