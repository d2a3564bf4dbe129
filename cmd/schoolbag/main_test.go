package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schoolbag/internal/config"
	"schoolbag/internal/nav"
)

func TestSetupLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := setupLogger(config.LoggingConfig{Level: "debug"})
	if err != nil {
		t.Fatal(err)
	}
	defer closeLog()
	logger.Info("dropped")
}

func TestSetupLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeLog, err := setupLogger(config.LoggingConfig{File: path, Level: "warn", Format: "json"})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("below level")
	logger.Warn("kept", "day", "Среда")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)
	if !strings.HasPrefix(got, "{") {
		t.Fatalf("log file should hold bare JSON records: %q", got)
	}
	if strings.Contains(got, "below level") {
		t.Fatalf("info record written at warn level: %q", got)
	}
	if !strings.Contains(got, `"msg":"kept"`) || !strings.Contains(got, `"day":"Среда"`) {
		t.Fatalf("missing warn record: %q", got)
	}
}

func TestOutputOptionsWithoutTTY(t *testing.T) {
	opts := outputOptions(false)
	if opts.Markdown || opts.Width != 80 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestStartDestination(t *testing.T) {
	cases := []struct {
		route string
		want  nav.Destination
	}{
		{"", nav.Schedule()},
		{"school_checklist", nav.Checklist()},
		{"lessons_editor/Среда", nav.LessonsEditor("Среда")},
		{"lessons_editor/Воскресенье", nav.LessonsEditor("Понедельник")},
		{"lessons_editor", nav.LessonsEditor("Понедельник")},
	}
	for _, tc := range cases {
		got, err := startDestination(tc.route)
		if err != nil {
			t.Fatalf("startDestination(%q): %v", tc.route, err)
		}
		if got != tc.want {
			t.Fatalf("startDestination(%q)=%+v, want %+v", tc.route, got, tc.want)
		}
	}
	if _, err := startDestination("settings"); err == nil {
		t.Fatal("expected error for unknown route")
	}
}
