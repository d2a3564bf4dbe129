package checklist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplaceSubject_New(t *testing.T) {
	s := NewStore()
	before := s.Len()

	s.ReplaceSubject("Химия", []string{"Халат"})

	require.Equal(t, before+1, s.Len())
	require.Equal(t, []string{"Халат"}, s.Items("Химия"))
}

func TestReplaceSubject_Existing(t *testing.T) {
	s := NewStore()
	before := s.All()

	s.ReplaceSubject("География", []string{"Атлас"})

	after := s.All()
	require.Len(t, after, len(before))
	for k, v := range before {
		if k == "География" {
			require.Equal(t, []string{"Атлас"}, after[k])
			continue
		}
		require.Equal(t, v, after[k])
	}
}

func TestReplaceSubject_EmptyName(t *testing.T) {
	s := NewStore()
	s.ReplaceSubject("", []string{"Ручка"})
	require.Equal(t, []string{"Ручка"}, s.All()[""])
	require.Equal(t, 6, s.Len())
}

func TestItemsUnknown(t *testing.T) {
	s := NewStore()
	require.Empty(t, s.Items("Астрономия"))
}

func TestSubscribeReportsCreation(t *testing.T) {
	s := NewStore()
	var seen []Change
	cancel := s.Subscribe(func(c Change) { seen = append(seen, c) })

	s.ReplaceSubject("Литература", []string{"Книга"})
	s.ReplaceSubject("Музыка", nil)
	cancel()
	s.ReplaceSubject("Музыка", []string{"Ноты"})

	require.Equal(t, []Change{
		{Subject: "Литература", Items: []string{"Книга"}, Created: false},
		{Subject: "Музыка", Items: nil, Created: true},
	}, seen)
	require.Equal(t, uint64(3), s.Version())
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewStore()
	snap := s.All()
	snap["Математика"][0] = "mutated"
	delete(snap, "Литература")

	require.Equal(t, Seed(), s.All())
}
