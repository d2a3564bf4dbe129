package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	days := Seed()
	require.Len(t, days, 6)
	for i, d := range days {
		require.Equal(t, Weekdays[i], d.Name)
	}
	base := []string{"Математика", "Русский язык", "География", "Физ. культура"}
	for _, d := range days[:5] {
		require.Equal(t, base, d.Subjects)
	}
	require.Equal(t, append(base, "Литература"), days[5].Subjects)
}

func TestReplaceDay_EveryWeekday(t *testing.T) {
	for _, day := range Weekdays {
		t.Run(day, func(t *testing.T) {
			s := NewStore()
			before := s.All()
			want := []string{"Химия", "", "Химия"}

			require.True(t, s.ReplaceDay(day, want))

			after := s.All()
			require.Len(t, after, 6)
			for i, d := range after {
				require.Equal(t, before[i].Name, d.Name)
				if d.Name == day {
					require.Equal(t, want, d.Subjects)
				} else {
					require.Equal(t, before[i].Subjects, d.Subjects)
				}
			}
		})
	}
}

func TestReplaceDay_UnknownIsNoop(t *testing.T) {
	s := NewStore()
	var calls int
	s.Subscribe(func(Change) { calls++ })

	require.False(t, s.ReplaceDay("NotADay", []string{"x"}))
	require.Equal(t, Seed(), s.All())
	require.Zero(t, s.Version())
	require.Zero(t, calls)
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewStore()
	snap := s.All()
	snap[0].Subjects[0] = "mutated"

	input := []string{"a", "b"}
	s.ReplaceDay("Вторник", input)
	input[0] = "mutated"

	got, ok := s.Day("Понедельник")
	require.True(t, ok)
	require.Equal(t, "Математика", got[0])
	got, _ = s.Day("Вторник")
	require.Equal(t, []string{"a", "b"}, got)
}

func TestSubscribe(t *testing.T) {
	s := NewStore()
	var seen []Change
	cancel := s.Subscribe(func(c Change) { seen = append(seen, c) })

	s.ReplaceDay("Среда", []string{"Музыка"})
	require.Equal(t, []Change{{Day: "Среда", Subjects: []string{"Музыка"}}}, seen)
	require.Equal(t, uint64(1), s.Version())

	cancel()
	s.ReplaceDay("Среда", nil)
	require.Len(t, seen, 1)
	require.Equal(t, uint64(2), s.Version())
}

func TestDayUnknown(t *testing.T) {
	s := NewStore()
	got, ok := s.Day("Воскресенье")
	require.False(t, ok)
	require.Nil(t, got)
	require.False(t, IsWeekday("Воскресенье"))
	require.True(t, IsWeekday("Суббота"))
}
