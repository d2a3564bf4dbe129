package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"schoolbag/internal/editor"
	"schoolbag/internal/i18n"
	"schoolbag/internal/schedule"
	"schoolbag/internal/session"

	"github.com/chzyer/readline"
)

// Options 控制行模式输出
// Options controls line-mode output
type Options struct {
	// Markdown renders checklists through glamour; plain markdown otherwise.
	Markdown bool
	Width    int
}

// Loop 行模式前端，与 TUI 共享同一会话
// Loop is the line-mode frontend over the shared session
type Loop struct {
	session *session.Session
	locale  *i18n.I18n
	in      LineReader
	out     io.Writer
	opts    Options
}

// NewLoop creates a loop reading commands from in and writing to out.
func NewLoop(sess *session.Session, locale *i18n.I18n, in LineReader, out io.Writer, opts Options) *Loop {
	if locale == nil {
		locale = i18n.Global()
	}
	return &Loop{session: sess, locale: locale, in: in, out: out, opts: opts}
}

// Run reads and executes commands until exit or end of input.
func (l *Loop) Run() error {
	for {
		line, err := l.in.ReadLine("> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(l.out)
				continue
			case errors.Is(err, io.EOF):
				return nil
			default:
				return fmt.Errorf("read input: %w", err)
			}
		}
		if exit := l.Execute(line); exit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the loop should exit.
func (l *Loop) Execute(line string) bool {
	input := strings.TrimPrefix(strings.TrimSpace(line), "/")
	if input == "" {
		return false
	}
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(name) {
	case "exit", "quit":
		return true
	case "help":
		fmt.Fprintln(l.out, l.locale.T("repl.help"))
	case "schedule":
		fmt.Fprint(l.out, renderSchedule(l.session.Schedule.All()))
	case "checklist":
		l.printChecklist(rest)
	case "day":
		l.saveDay(rest)
	case "subject":
		l.saveSubject(rest)
	default:
		fmt.Fprintln(l.out, l.locale.T("repl.unknown", name))
	}
	return false
}

func (l *Loop) printChecklist(day string) {
	if day == "" {
		day = schedule.Weekdays[0]
	}
	md := checklistMarkdown(l.locale.T("checklist.title"), day, l.session.BuildChecklist(day), l.locale.T("checklist.empty"))
	if l.opts.Markdown {
		md = RenderMarkdown(md, l.opts.Width)
	}
	fmt.Fprintln(l.out, strings.TrimRight(md, "\n"))
}

func (l *Loop) saveDay(args string) {
	day, values, ok := splitAssignment(args)
	if !ok {
		fmt.Fprintln(l.out, l.locale.T("repl.usage_day"))
		return
	}
	l.session.SaveDay(day, values)
	if !schedule.IsWeekday(day) {
		fmt.Fprintln(l.out, l.locale.T("repl.ignored", day))
		return
	}
	fmt.Fprintln(l.out, l.locale.T("repl.saved"))
}

func (l *Loop) saveSubject(args string) {
	subject, values, ok := splitAssignment(args)
	if !ok {
		fmt.Fprintln(l.out, l.locale.T("repl.usage_subject"))
		return
	}
	buf := editor.NewSubject(subject, nil)
	if len(values) > buf.Len() {
		buf = editor.NewSubject(subject, make([]string, len(values)))
	}
	for i, v := range values {
		buf.Set(i, v)
	}
	buf.Save(l.session)
	fmt.Fprintln(l.out, l.locale.T("repl.saved"))
}

// splitAssignment parses "<name> = a; b; c". An empty right-hand side yields
// no values; values are trimmed but blanks are kept.
func splitAssignment(args string) (string, []string, bool) {
	name, list, ok := strings.Cut(args, "=")
	if !ok {
		return "", nil, false
	}
	name = strings.TrimSpace(name)
	list = strings.TrimSpace(list)
	if list == "" {
		return name, []string{}, true
	}
	parts := strings.Split(list, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return name, parts, true
}
