package session

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"schoolbag/internal/checklist"

	"github.com/stretchr/testify/require"
)

func TestBuildChecklistFollowsEdits(t *testing.T) {
	s := New(nil)
	rev := s.Revision()

	s.SaveDay("Пятница", []string{"Литература"})
	require.NotEqual(t, rev, s.Revision())
	require.Equal(t, []checklist.Entry{
		{Item: "Тетрадь", Subject: "Литература"},
		{Item: "Книга", Subject: "Литература"},
	}, s.BuildChecklist("Пятница"))

	s.SaveSubject("Литература", []string{"Хрестоматия"})
	require.Equal(t, []checklist.Entry{
		{Item: "Хрестоматия", Subject: "Литература"},
	}, s.BuildChecklist("Пятница"))
}

func TestSaveDayUnknownLogsAndKeepsRevision(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(logger)
	rev := s.Revision()

	s.SaveDay("Воскресенье", []string{"x"})

	require.Equal(t, rev, s.Revision())
	require.Len(t, s.Schedule.All(), 6)
	require.True(t, strings.Contains(buf.String(), "unknown day"), buf.String())
}

func TestShared(t *testing.T) {
	a := Shared(nil)
	b := Shared(nil)
	require.Same(t, a, b)
}
