package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"SCHOOLBAG_CONFIG_PATH", "SCHOOLBAG_LANG", "SCHOOLBAG_MODE", "SCHOOLBAG_LOG_FILE", "SCHOOLBAG_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	work := t.TempDir()
	oldwd, _ := os.Getwd()
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
	return work
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Locale != "ru" || cfg.UI.Mode != ModeTUI || !cfg.UI.AltScreen {
		t.Fatalf("unexpected ui defaults: %+v", cfg.UI)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" || cfg.Logging.File != "" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadJSONCAndPrecedence(t *testing.T) {
	isolate(t)
	home := os.Getenv("HOME")

	globalDir := filepath.Join(home, ".schoolbag")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatal(err)
	}
	globalCfg := `{
  // global
  "ui": {"locale": "en", "alt_screen": false},
  "logging": {"level": "debug"}
}`
	if err := os.WriteFile(filepath.Join(globalDir, "config.json"), []byte(globalCfg), 0o644); err != nil {
		t.Fatal(err)
	}
	projectCfg := `{
  /* project */
  "ui": {"mode": "PLAIN"},
  "logging": {"file": "logs/app.log"}
}`
	if err := os.WriteFile("schoolbag.config.json", []byte(projectCfg), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Locale != "en" {
		t.Fatalf("locale=%q", cfg.UI.Locale)
	}
	if cfg.UI.AltScreen {
		t.Fatalf("alt_screen expected false")
	}
	if cfg.UI.Mode != ModePlain {
		t.Fatalf("mode=%q", cfg.UI.Mode)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level=%q", cfg.Logging.Level)
	}
	if !filepath.IsAbs(cfg.Logging.File) || filepath.Base(cfg.Logging.File) != "app.log" {
		t.Fatalf("log file=%q", cfg.Logging.File)
	}
}

func TestLoadYAML(t *testing.T) {
	work := isolate(t)
	path := filepath.Join(work, "custom.yaml")
	content := "ui:\n  locale: en\n  start_route: lessons_editor/Среда\nrepl:\n  history_file: ~/.schoolbag/history\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Locale != "en" || cfg.UI.StartRoute != "lessons_editor/Среда" {
		t.Fatalf("unexpected ui: %+v", cfg.UI)
	}
	want := filepath.Join(os.Getenv("HOME"), ".schoolbag", "history")
	if cfg.REPL.HistoryFile != want {
		t.Fatalf("history=%q, want %q", cfg.REPL.HistoryFile, want)
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SCHOOLBAG_MODE", "plain")
	t.Setenv("SCHOOLBAG_LOG_LEVEL", "WARN")
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.Mode != ModePlain {
		t.Fatalf("mode=%q", cfg.UI.Mode)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("level=%q", cfg.Logging.Level)
	}
}

func TestInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("SCHOOLBAG_MODE", "gui")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown mode")
	}

	t.Setenv("SCHOOLBAG_MODE", "")
	t.Setenv("SCHOOLBAG_LOG_LEVEL", "verbose")
	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestParseError(t *testing.T) {
	isolate(t)
	if err := os.WriteFile("schoolbag.config.json", []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(""); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestStripJSONCommentsKeepsStrings(t *testing.T) {
	in := []byte(`{"a": "http://x/*y*/"} // tail`)
	got := string(stripJSONComments(in))
	if got != `{"a": "http://x/*y*/"} ` {
		t.Fatalf("got %q", got)
	}
}

func TestWriteScaffold(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".schoolbag")
	path, err := WriteScaffold(dir)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("empty scaffold")
	}

	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteScaffold(dir); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "{}" {
		t.Fatalf("existing config overwritten: %q", data)
	}
}
