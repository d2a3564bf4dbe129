package checklist

import (
	"testing"

	"schoolbag/internal/schedule"

	"github.com/stretchr/testify/require"
)

var weekdayEntries = []Entry{
	{"Тетрадь", "Математика"},
	{"Учебник", "Математика"},
	{"Линейка", "Математика"},
	{"Тетрадь", "Русский язык"},
	{"Учебник", "Русский язык"},
	{"Тетрадь", "География"},
	{"Атлас", "География"},
	{"Контурные карты", "География"},
	{"Спортивная форма", "Физ. культура"},
}

func TestBuild_Monday(t *testing.T) {
	got := Build("Понедельник", schedule.Seed(), Seed())
	require.Equal(t, weekdayEntries, got)
}

func TestBuild_Saturday(t *testing.T) {
	want := append(append([]Entry{}, weekdayEntries...),
		Entry{"Тетрадь", "Литература"},
		Entry{"Книга", "Литература"},
	)
	got := Build("Суббота", schedule.Seed(), Seed())
	require.Equal(t, want, got)
}

func TestBuild_UnknownDay(t *testing.T) {
	got := Build("Воскресенье", schedule.Seed(), Seed())
	require.Empty(t, got)
}

func TestBuild_Pure(t *testing.T) {
	days, items := schedule.Seed(), Seed()
	first := Build("Среда", days, items)
	second := Build("Среда", days, items)
	require.Equal(t, first, second)
	require.Equal(t, schedule.Seed(), days)
	require.Equal(t, Seed(), items)
}

func TestBuild_RepeatedAndMissingSubjects(t *testing.T) {
	days := []schedule.DaySchedule{
		{Name: "Вторник", Subjects: []string{"Литература", "Пение", "Литература"}},
		{Name: "Вторник", Subjects: []string{"Математика"}},
	}
	got := Build("Вторник", days, Seed())
	require.Equal(t, []Entry{
		{"Тетрадь", "Литература"},
		{"Книга", "Литература"},
		{"Тетрадь", "Литература"},
		{"Книга", "Литература"},
	}, got)
}
