package widgets

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, https://catppuccin.com/palette
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorPeach    lipgloss.Color = "#fab387"
)

const (
	colorAccent   = colorPink
	colorFocus    = colorLavender
	colorSelected = colorBlue
	colorSuccess  = colorGreen
	colorError    = colorRed
	colorToday    = colorPeach
)

// Styles holds every style the calendar and its chrome use. DefaultStyles is
// what the screens start from.
type Styles struct {
	Title       lipgloss.Style
	DayName     lipgloss.Style
	Day         lipgloss.Style
	DayOutside  lipgloss.Style
	DayBlocked  lipgloss.Style
	DaySelected lipgloss.Style
	DayToday    lipgloss.Style
	Cursor      lipgloss.Style
	Frame       lipgloss.Style
	Status      lipgloss.Style
	StatusErr   lipgloss.Style
	Key         lipgloss.Style
	Muted       lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		DayName:     lipgloss.NewStyle().Foreground(colorSubtext0),
		Day:         lipgloss.NewStyle().Foreground(colorText),
		DayOutside:  lipgloss.NewStyle().Foreground(colorOverlay0),
		DayBlocked:  lipgloss.NewStyle().Foreground(colorSurface1).Strikethrough(true),
		DaySelected: lipgloss.NewStyle().Foreground(colorBase).Background(colorSelected).Bold(true),
		DayToday:    lipgloss.NewStyle().Foreground(colorToday).Bold(true),
		Cursor:      lipgloss.NewStyle().Foreground(colorMantle).Background(colorFocus).Bold(true),
		Frame:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1),
		Status:      lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0),
		StatusErr:   lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0),
		Key:         lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(colorSubtext0),
	}
}
