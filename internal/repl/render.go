package repl

import (
	"fmt"
	"strings"

	"schoolbag/internal/checklist"
	"schoolbag/internal/schedule"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
)

// renderSchedule 按列对齐输出课程表
// renderSchedule prints one day per row with the day column padded to a
// common display width
func renderSchedule(days []schedule.DaySchedule) string {
	nameWidth := 0
	for _, d := range days {
		nameWidth = max(nameWidth, runewidth.StringWidth(d.Name))
	}

	var b strings.Builder
	for _, d := range days {
		numbered := make([]string, 0, len(d.Subjects))
		for i, subject := range d.Subjects {
			numbered = append(numbered, fmt.Sprintf("%d. %s", i+1, subject))
		}
		b.WriteString(runewidth.FillRight(d.Name, nameWidth))
		b.WriteString("  ")
		b.WriteString(strings.Join(numbered, ", "))
		b.WriteString("\n")
	}
	return b.String()
}

// checklistMarkdown 生成清单的 markdown 文本
// checklistMarkdown formats the entries as a markdown list under a heading
func checklistMarkdown(title, day string, entries []checklist.Entry, empty string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s: %s\n\n", title, day)
	if len(entries) == 0 {
		b.WriteString("_" + empty + "_\n")
		return b.String()
	}
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s · *%s*\n", e.Item, e.Subject)
	}
	return b.String()
}

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}
