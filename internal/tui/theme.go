package tui

import "github.com/charmbracelet/lipgloss"

// Theme 定义 TUI 主题色彩和样式
// Theme defines TUI colors and styles
type Theme struct {
	// 基础色 / Base colors
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	TextDim lipgloss.Color
	Border  lipgloss.Color

	// 预构建样式 / Pre-built styles
	TitleStyle          lipgloss.Style
	HeadingStyle        lipgloss.Style
	CardStyle           lipgloss.Style
	CardSelectedStyle   lipgloss.Style
	CardTitleStyle      lipgloss.Style
	ButtonStyle         lipgloss.Style
	ButtonFocusedStyle  lipgloss.Style
	LabelStyle          lipgloss.Style
	LabelFocusedStyle   lipgloss.Style
	SelectorStyle       lipgloss.Style
	MenuItemStyle       lipgloss.Style
	MenuItemActiveStyle lipgloss.Style
	ItemStyle           lipgloss.Style
	MutedStyle          lipgloss.Style
	StatusBarStyle      lipgloss.Style
}

// DarkTheme 暗色主题（默认）
// DarkTheme is the default dark theme
func DarkTheme() Theme {
	t := Theme{
		Primary: lipgloss.Color("#7C3AED"),
		Accent:  lipgloss.Color("#F59E0B"),
		Muted:   lipgloss.Color("#6B7280"),
		Text:    lipgloss.Color("#E5E7EB"),
		TextDim: lipgloss.Color("#9CA3AF"),
		Border:  lipgloss.Color("#374151"),
	}

	t.TitleStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		MarginBottom(1)

	t.HeadingStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.CardStyle = lipgloss.NewStyle().
		Width(26).
		Padding(0, 1).
		Margin(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border)

	t.CardSelectedStyle = t.CardStyle.
		BorderForeground(t.Accent)

	t.CardTitleStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		MarginBottom(1)

	t.ButtonStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Padding(0, 2)

	t.ButtonFocusedStyle = t.ButtonStyle.
		Background(t.Primary).
		Bold(true)

	t.LabelStyle = lipgloss.NewStyle().
		Foreground(t.TextDim)

	t.LabelFocusedStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.SelectorStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Border(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.MenuItemStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		PaddingLeft(2)

	t.MenuItemActiveStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		PaddingLeft(2)

	t.ItemStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.StatusBarStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(lipgloss.Color("#111827"))

	return t
}

func (t Theme) button(label string, focused bool) string {
	if focused {
		return t.ButtonFocusedStyle.Render(label)
	}
	return t.ButtonStyle.Render(label)
}

func (t Theme) label(text string, focused bool) string {
	if focused {
		return t.LabelFocusedStyle.Render(text)
	}
	return t.LabelStyle.Render(text)
}
