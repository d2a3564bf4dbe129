package tui

import (
	"schoolbag/internal/editor"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// subjectScreen edits the items of one subject. Focus 0..N-1 are the item
// slots, N is the save button.
type subjectScreen struct {
	env    env
	buffer *editor.Subject
	slots  []textinput.Model
	focus  int
}

func newSubjectScreen(e env, subject string) *subjectScreen {
	s := &subjectScreen{
		env:    e,
		buffer: editor.NewSubject(subject, e.session.Checklist.Items(subject)),
	}
	for _, text := range s.buffer.Slots() {
		in := newInput()
		in.SetValue(text)
		s.slots = append(s.slots, in)
	}
	s.slots[0].Focus()
	return s
}

func (s *subjectScreen) Init() tea.Cmd   { return textinput.Blink }
func (s *subjectScreen) Reveal() tea.Cmd { return nil }

func (s *subjectScreen) Help() []key.Binding {
	k := s.env.keys
	return []key.Binding{k.Up, k.Select, k.Back}
}

func (s *subjectScreen) Update(msg tea.Msg) (tea.Cmd, transition) {
	k := s.env.keys
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, k.Back):
			return nil, goBack
		case key.Matches(keyMsg, k.Select):
			if s.focus == len(s.slots) {
				s.buffer.Save(s.env.session)
				return nil, goBack
			}
			return s.setFocus(s.focus + 1), transition{}
		case key.Matches(keyMsg, k.Down), key.Matches(keyMsg, k.Next):
			return s.setFocus(s.focus + 1), transition{}
		case key.Matches(keyMsg, k.Up), key.Matches(keyMsg, k.Prev):
			return s.setFocus(s.focus - 1), transition{}
		}
	}

	if s.focus >= len(s.slots) {
		return nil, transition{}
	}
	var cmd tea.Cmd
	s.slots[s.focus], cmd = s.slots[s.focus].Update(msg)
	s.buffer.Set(s.focus, s.slots[s.focus].Value())
	return cmd, transition{}
}

func (s *subjectScreen) setFocus(i int) tea.Cmd {
	s.focus = max(0, min(i, len(s.slots)))
	for j := range s.slots {
		s.slots[j].Blur()
	}
	if s.focus < len(s.slots) {
		return s.slots[s.focus].Focus()
	}
	return nil
}

func (s *subjectScreen) View(width int) string {
	t := s.env.theme
	l := s.env.locale

	parts := []string{
		t.TitleStyle.Render(s.buffer.Name()),
		t.HeadingStyle.Render(l.T("subject.bring")),
		"",
	}
	for i, slot := range s.slots {
		parts = append(parts, t.label(l.T("subject.item", i+1), s.focus == i), slot.View())
	}
	parts = append(parts, "", t.button(l.T("common.save"), s.focus == len(s.slots)))
	return lipgloss.NewStyle().MaxWidth(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
