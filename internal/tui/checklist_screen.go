package tui

import (
	"strings"

	"schoolbag/internal/checklist"
	"schoolbag/internal/schedule"
	"schoolbag/internal/session"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusSelector = iota
	focusBack
)

// checklistScreen 按天显示需要携带的物品
// checklistScreen shows the items to bring on the selected day. The entries
// are derived data: they are rebuilt whenever the day or a store revision
// changes.
type checklistScreen struct {
	env      env
	selected int
	expanded bool
	menu     int
	focus    int

	entries []checklist.Entry
	rev     session.Revision
	built   bool
}

func newChecklistScreen(e env) *checklistScreen {
	s := &checklistScreen{env: e}
	s.refresh()
	return s
}

func (s *checklistScreen) Init() tea.Cmd { return nil }

func (s *checklistScreen) Reveal() tea.Cmd {
	s.refresh()
	return nil
}

func (s *checklistScreen) Help() []key.Binding {
	k := s.env.keys
	return []key.Binding{k.Up, k.Select, k.Back}
}

func (s *checklistScreen) day() string {
	return schedule.Weekdays[s.selected]
}

func (s *checklistScreen) selectDay(i int) {
	if i == s.selected {
		return
	}
	s.selected = i
	s.built = false
	s.refresh()
}

func (s *checklistScreen) refresh() {
	rev := s.env.session.Revision()
	if s.built && rev == s.rev {
		return
	}
	s.entries = s.env.session.BuildChecklist(s.day())
	s.rev = rev
	s.built = true
}

func (s *checklistScreen) Update(msg tea.Msg) (tea.Cmd, transition) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, transition{}
	}
	defer s.refresh()

	days := len(schedule.Weekdays)
	k := s.env.keys
	if s.expanded {
		switch {
		case key.Matches(keyMsg, k.Back):
			s.expanded = false
		case key.Matches(keyMsg, k.Up), key.Matches(keyMsg, k.Prev):
			s.menu = max(0, s.menu-1)
		case key.Matches(keyMsg, k.Down), key.Matches(keyMsg, k.Next):
			s.menu = min(days-1, s.menu+1)
		case key.Matches(keyMsg, k.Select):
			s.selectDay(s.menu)
			s.expanded = false
		}
		return nil, transition{}
	}

	switch {
	case key.Matches(keyMsg, k.Back):
		return nil, goBack
	case key.Matches(keyMsg, k.Up), key.Matches(keyMsg, k.Prev):
		s.focus = focusSelector
	case key.Matches(keyMsg, k.Down), key.Matches(keyMsg, k.Next):
		s.focus = focusBack
	case key.Matches(keyMsg, k.Left):
		if s.focus == focusSelector {
			s.selectDay((s.selected + days - 1) % days)
		}
	case key.Matches(keyMsg, k.Right):
		if s.focus == focusSelector {
			s.selectDay((s.selected + 1) % days)
		}
	case key.Matches(keyMsg, k.Select):
		if s.focus == focusBack {
			return nil, goBack
		}
		s.expanded = true
		s.menu = s.selected
	}
	return nil, transition{}
}

func (s *checklistScreen) View(width int) string {
	t := s.env.theme
	l := s.env.locale

	selector := s.day() + " ▾"
	selectorStyle := t.SelectorStyle
	if s.focus == focusSelector {
		selectorStyle = selectorStyle.BorderForeground(t.Accent)
	}
	parts := []string{
		t.TitleStyle.Render(l.T("checklist.title")),
		selectorStyle.Width(min(width-2, 40)).Render(selector),
	}
	if s.expanded {
		for i, day := range schedule.Weekdays {
			style := t.MenuItemStyle
			if i == s.menu {
				style = t.MenuItemActiveStyle
			}
			parts = append(parts, style.Render(day))
		}
	}
	parts = append(parts, "")

	if len(s.entries) == 0 {
		parts = append(parts, t.MutedStyle.Render(l.T("checklist.empty")))
	} else {
		parts = append(parts, renderEntries(s.entries, t))
	}
	parts = append(parts, "", t.button(l.T("checklist.back"), s.focus == focusBack))
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func renderEntries(entries []checklist.Entry, t Theme) string {
	itemWidth := 0
	for _, e := range entries {
		itemWidth = max(itemWidth, lipgloss.Width("• "+e.Item))
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		item := "• " + e.Item
		pad := strings.Repeat(" ", itemWidth-lipgloss.Width(item)+2)
		lines = append(lines, t.ItemStyle.Render(item)+pad+t.MutedStyle.Render(e.Subject))
	}
	return strings.Join(lines, "\n")
}
