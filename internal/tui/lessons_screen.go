package tui

import (
	"strconv"

	"schoolbag/internal/editor"
	"schoolbag/internal/nav"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// lessonsScreen 编辑某天的课程
// lessonsScreen edits one day's subjects. Focus 0 is the lesson count,
// 1..N are the lesson fields and N+1 is the save button. The count is applied
// when focus leaves its field.
type lessonsScreen struct {
	env    env
	buffer *editor.Lessons
	count  textinput.Model
	fields []textinput.Model
	focus  int
}

func newLessonsScreen(e env, day string) *lessonsScreen {
	subjects, _ := e.session.Schedule.Day(day)
	s := &lessonsScreen{
		env:    e,
		buffer: editor.NewLessons(day, subjects),
		count:  newInput(),
	}
	s.count.SetValue(strconv.Itoa(s.buffer.Count()))
	s.count.Focus()
	s.syncFields()
	return s
}

func newInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 32
	return ti
}

func (s *lessonsScreen) Init() tea.Cmd   { return textinput.Blink }
func (s *lessonsScreen) Reveal() tea.Cmd { return nil }

func (s *lessonsScreen) Help() []key.Binding {
	k := s.env.keys
	return []key.Binding{k.Up, k.Select, k.EditSubject, k.Back}
}

func (s *lessonsScreen) saveIndex() int { return s.buffer.Count() + 1 }

func (s *lessonsScreen) Update(msg tea.Msg) (tea.Cmd, transition) {
	k := s.env.keys
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, k.Back):
			return nil, goBack
		case key.Matches(keyMsg, k.Select):
			if s.focus == s.saveIndex() {
				s.buffer.Save(s.env.session)
				return nil, goBack
			}
			return s.setFocus(s.focus + 1), transition{}
		case key.Matches(keyMsg, k.Down), key.Matches(keyMsg, k.Next):
			return s.setFocus(s.focus + 1), transition{}
		case key.Matches(keyMsg, k.Up), key.Matches(keyMsg, k.Prev):
			return s.setFocus(s.focus - 1), transition{}
		case key.Matches(keyMsg, k.EditSubject):
			if s.focus >= 1 && s.focus <= s.buffer.Count() {
				return nil, pushTo(nav.SubjectEditor(s.buffer.Get(s.focus - 1)))
			}
			return nil, transition{}
		}
	}

	var cmd tea.Cmd
	switch {
	case s.focus == 0:
		s.count, cmd = s.count.Update(msg)
	case s.focus <= s.buffer.Count():
		i := s.focus - 1
		s.fields[i], cmd = s.fields[i].Update(msg)
		s.buffer.Set(i, s.fields[i].Value())
	}
	return cmd, transition{}
}

func (s *lessonsScreen) setFocus(i int) tea.Cmd {
	if s.focus == 0 && i != 0 {
		n := s.buffer.SetCountText(s.count.Value())
		s.count.SetValue(strconv.Itoa(n))
		s.syncFields()
	}
	s.focus = max(0, min(i, s.saveIndex()))

	s.count.Blur()
	for j := range s.fields {
		s.fields[j].Blur()
	}
	switch {
	case s.focus == 0:
		return s.count.Focus()
	case s.focus <= len(s.fields):
		return s.fields[s.focus-1].Focus()
	}
	return nil
}

// syncFields resizes the inputs to the buffer, keeping inputs at surviving
// indices and filling new ones from the buffer.
func (s *lessonsScreen) syncFields() {
	n := s.buffer.Count()
	if len(s.fields) > n {
		s.fields = s.fields[:n]
	}
	for len(s.fields) < n {
		in := newInput()
		in.SetValue(s.buffer.Get(len(s.fields)))
		s.fields = append(s.fields, in)
	}
}

func (s *lessonsScreen) View(width int) string {
	t := s.env.theme
	l := s.env.locale

	parts := []string{
		t.TitleStyle.Render(s.buffer.Day()),
		t.label(l.T("lessons.count"), s.focus == 0),
		s.count.View(),
		"",
	}
	for i, field := range s.fields {
		focused := s.focus == i+1
		row := lipgloss.JoinHorizontal(lipgloss.Top, field.View(), " ", t.MutedStyle.Render(l.T("lessons.edit")))
		parts = append(parts, t.label(l.T("lessons.lesson", i+1), focused), row)
	}
	parts = append(parts, "", t.button(l.T("common.save"), s.focus == s.saveIndex()))
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
