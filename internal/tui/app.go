package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"schoolbag/internal/checklist"
	"schoolbag/internal/i18n"
	"schoolbag/internal/nav"
	"schoolbag/internal/schedule"
	"schoolbag/internal/session"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type transitionKind int

const (
	stay transitionKind = iota
	push
	back
)

// transition 屏幕请求的导航动作
// transition is the navigation a screen asks for after handling a message
type transition struct {
	kind transitionKind
	to   nav.Destination
}

func pushTo(d nav.Destination) transition { return transition{kind: push, to: d} }

var goBack = transition{kind: back}

// screen 单个目的地的界面
// screen renders one destination
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, transition)
	View(width int) string
	Help() []key.Binding
	// Reveal is called when the screen becomes the top of the stack again.
	Reveal() tea.Cmd
}

// env 屏幕共享的依赖
// env holds what every screen needs
type env struct {
	session *session.Session
	theme   Theme
	keys    KeyMap
	locale  *i18n.I18n
}

// status 最近一次保存的提示
// status holds the last store change notice shown in the status bar
type status struct {
	text string
}

// App Bubble Tea 主 Model
// App is the main Bubble Tea model
type App struct {
	// 布局 / Layout
	width  int
	height int

	stack   *nav.Stack
	screens []screen
	env     env
	help    help.Model
	status  *status
	cancels []func()
	logger  *slog.Logger
}

// NewApp 创建 TUI 应用
// NewApp creates a new TUI application over sess
func NewApp(sess *session.Session, locale *i18n.I18n, logger *slog.Logger) App {
	if locale == nil {
		locale = i18n.Global()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e := env{
		session: sess,
		theme:   DarkTheme(),
		keys:    DefaultKeyMap(locale),
		locale:  locale,
	}
	st := &status{}
	a := App{
		stack:  nav.NewStack(nav.Schedule()),
		env:    e,
		help:   help.New(),
		status: st,
		logger: logger,
	}
	a.cancels = append(a.cancels,
		sess.Schedule.Subscribe(func(c schedule.Change) {
			st.text = locale.T("status.saved_day", c.Day)
		}),
		sess.Checklist.Subscribe(func(c checklist.Change) {
			st.text = locale.T("status.saved_subject", c.Subject)
		}),
	)
	a.screens = []screen{a.open(a.stack.Current())}
	return a
}

// StartAt 在课程表之上打开 d，返回后回到课程表
// StartAt opens d on top of the schedule so that going back still lands on
// the schedule. The schedule itself is already the root.
func (a App) StartAt(d nav.Destination) App {
	if d.Kind == nav.KindSchedule {
		return a
	}
	a.stack.Push(d)
	a.screens = append(a.screens, a.open(d))
	return a
}

// Close 取消对会话存储的订阅
// Close drops the store subscriptions
func (a App) Close() {
	for _, cancel := range a.cancels {
		cancel()
	}
}

// Current returns the destination on top of the back stack.
func (a App) Current() nav.Destination {
	return a.stack.Current()
}

func (a App) Init() tea.Cmd {
	return a.top().Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.env.keys.Quit) {
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil
	}

	cmd, tr := a.top().Update(msg)
	switch tr.kind {
	case push:
		a.logger.Debug("navigate", "route", tr.to.Route(), "depth", a.stack.Depth()+1)
		a.stack.Push(tr.to)
		next := a.open(tr.to)
		a.screens = append(a.screens, next)
		return a, tea.Batch(cmd, next.Init())
	case back:
		if !a.stack.Pop() {
			return a, cmd
		}
		a.screens = a.screens[:len(a.screens)-1]
		a.logger.Debug("navigate back", "route", a.stack.Current().Route(), "depth", a.stack.Depth())
		return a, tea.Batch(cmd, a.top().Reveal())
	}
	return a, cmd
}

func (a App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}
	body := a.top().View(width)
	footer := a.help.ShortHelpView(a.top().Help())
	return lipgloss.JoinVertical(lipgloss.Left, body, "", footer, a.renderStatusBar(width))
}

func (a App) top() screen {
	return a.screens[len(a.screens)-1]
}

func (a App) open(d nav.Destination) screen {
	switch d.Kind {
	case nav.KindLessonsEditor:
		return newLessonsScreen(a.env, d.Day)
	case nav.KindSubjectEditor:
		return newSubjectScreen(a.env, d.Subject)
	case nav.KindChecklist:
		return newChecklistScreen(a.env)
	default:
		return newScheduleScreen(a.env)
	}
}

func (a App) renderStatusBar(width int) string {
	left := " " + a.stack.Current().Route()
	right := a.status.text + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	bar := left + strings.Repeat(" ", gap) + right
	return a.env.theme.StatusBarStyle.Width(width).Render(bar)
}

// Options 控制终端程序行为
// Options controls the terminal program
type Options struct {
	AltScreen bool
	// Start is the destination shown first; the zero value is the schedule.
	Start nav.Destination
}

// Run 启动 Bubble Tea TUI
// Run starts the Bubble Tea TUI application
func Run(sess *session.Session, locale *i18n.I18n, logger *slog.Logger, opts Options) error {
	app := NewApp(sess, locale, logger).StartAt(opts.Start)
	defer app.Close()

	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, programOpts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
