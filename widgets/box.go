package widgets

import "github.com/charmbracelet/lipgloss"

// Box frames content with a rounded border and a bracketed title.
type Box struct {
	Title   string
	Content string
	Style   lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := b.Style
	if style.GetBorderStyle() == (lipgloss.Border{}) {
		style = style.Border(lipgloss.RoundedBorder())
	}
	style = style.Padding(0, 1).Width(max(1, width-2)).Height(max(1, height-2))
	body := b.Content
	if b.Title != "" {
		body = "[" + b.Title + "]\n" + body
	}
	return style.Render(body)
}
