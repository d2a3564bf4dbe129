package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"schoolbag/internal/config"
	"schoolbag/internal/i18n"
	"schoolbag/internal/nav"
	"schoolbag/internal/repl"
	"schoolbag/internal/session"
	"schoolbag/internal/tui"

	"golang.org/x/term"
)

func main() {
	var (
		configPath string
		mode       string
		day        string
		route      string
		initConfig bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC/YAML")
	flag.StringVar(&mode, "mode", "", "Frontend override: tui or plain")
	flag.StringVar(&day, "day", "", "Print the checklist for a day and exit")
	flag.StringVar(&route, "route", "", "TUI start route, e.g. lessons_editor/Среда or school_checklist")
	flag.BoolVar(&initConfig, "init-config", false, "Write a default config to ~/.schoolbag and exit")
	flag.Parse()

	if initConfig {
		path, err := config.WriteScaffold(filepath.Join("~", ".schoolbag"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "init config failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if m := strings.ToLower(strings.TrimSpace(mode)); m != "" {
		if m != config.ModeTUI && m != config.ModePlain {
			fmt.Fprintf(os.Stderr, "unsupported -mode %q\n", mode)
			os.Exit(2)
		}
		cfg.UI.Mode = m
	}

	if strings.TrimSpace(route) != "" {
		cfg.UI.StartRoute = strings.TrimSpace(route)
	}
	start, err := startDestination(cfg.UI.StartRoute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	i18n.Init(cfg.UI.Locale)
	locale := i18n.Global()

	logger, closeLog, err := setupLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log failed: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sess := session.Shared(logger)
	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	if strings.TrimSpace(day) != "" {
		loop := repl.NewLoop(sess, locale, nil, os.Stdout, outputOptions(stdoutTTY))
		loop.Execute("checklist " + day)
		return
	}

	if cfg.UI.Mode == config.ModeTUI && stdinTTY && stdoutTTY {
		logger.Info("starting tui", "locale", locale.Locale())
		if err := tui.Run(sess, locale, logger, tui.Options{AltScreen: cfg.UI.AltScreen, Start: start}); err != nil {
			fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Info("starting line mode", "locale", locale.Locale(), "interactive", stdinTTY)
	var input repl.LineReader
	if stdinTTY {
		var inputErr error
		input, inputErr = repl.NewLineReader(cfg.REPL.HistoryFile)
		if inputErr != nil {
			fmt.Fprintf(os.Stderr, "line editor unavailable, fallback to basic input: %v\n", inputErr)
		}
		fmt.Fprintln(os.Stdout, locale.T("repl.help"))
	} else {
		input = repl.NewBasicLineReader(os.Stdin, io.Discard)
	}
	defer input.Close()

	loop := repl.NewLoop(sess, locale, input, os.Stdout, outputOptions(stdoutTTY))
	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "line mode failed: %v\n", err)
		os.Exit(1)
	}
}

// startDestination resolves the configured start route; empty means the
// schedule.
func startDestination(route string) (nav.Destination, error) {
	if route == "" {
		return nav.Schedule(), nil
	}
	d, ok := nav.ParseRoute(route)
	if !ok {
		return nav.Destination{}, fmt.Errorf("unsupported route %q", route)
	}
	return d, nil
}

func outputOptions(stdoutTTY bool) repl.Options {
	width := 80
	if stdoutTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return repl.Options{Markdown: stdoutTTY, Width: width}
}
