package tui

import (
	"fmt"
	"strings"

	"schoolbag/internal/nav"
	"schoolbag/internal/schedule"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cardsPerRow = 2

// scheduleScreen 课程表：每行两张日卡片，底部为清单按钮
// scheduleScreen shows day cards two per row and the checklist button.
// Cursor values 0..len(days)-1 select a card; len(days) selects the button.
type scheduleScreen struct {
	env    env
	cursor int
}

func newScheduleScreen(e env) *scheduleScreen {
	return &scheduleScreen{env: e}
}

func (s *scheduleScreen) Init() tea.Cmd   { return nil }
func (s *scheduleScreen) Reveal() tea.Cmd { return nil }

func (s *scheduleScreen) Help() []key.Binding {
	k := s.env.keys
	return []key.Binding{k.Up, k.Select, k.Quit}
}

func (s *scheduleScreen) Update(msg tea.Msg) (tea.Cmd, transition) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, transition{}
	}

	days := len(schedule.Weekdays)
	k := s.env.keys
	switch {
	case key.Matches(keyMsg, k.Left):
		s.cursor = max(0, s.cursor-1)
	case key.Matches(keyMsg, k.Right), key.Matches(keyMsg, k.Next):
		s.cursor = min(days, s.cursor+1)
	case key.Matches(keyMsg, k.Prev):
		s.cursor = max(0, s.cursor-1)
	case key.Matches(keyMsg, k.Up):
		if s.cursor == days {
			s.cursor = days - 1
		} else {
			s.cursor = max(0, s.cursor-cardsPerRow)
		}
	case key.Matches(keyMsg, k.Down):
		s.cursor = min(days, s.cursor+cardsPerRow)
	case key.Matches(keyMsg, k.Select):
		if s.cursor == days {
			return nil, pushTo(nav.Checklist())
		}
		return nil, pushTo(nav.LessonsEditor(schedule.Weekdays[s.cursor]))
	}
	return nil, transition{}
}

func (s *scheduleScreen) View(width int) string {
	t := s.env.theme
	days := s.env.session.Schedule.All()

	var rows []string
	for start := 0; start < len(days); start += cardsPerRow {
		end := min(start+cardsPerRow, len(days))
		cards := make([]string, 0, cardsPerRow)
		for i := start; i < end; i++ {
			cards = append(cards, s.renderCard(days[i], i == s.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	parts := []string{t.TitleStyle.Render(s.env.locale.T("schedule.title"))}
	parts = append(parts, rows...)
	parts = append(parts, "", t.button(s.env.locale.T("schedule.bring"), s.cursor == len(days)))
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (s *scheduleScreen) renderCard(day schedule.DaySchedule, selected bool) string {
	t := s.env.theme
	lines := []string{t.CardTitleStyle.Render(day.Name)}
	for i, subject := range day.Subjects {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, subject))
	}
	style := t.CardStyle
	if selected {
		style = t.CardSelectedStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}
