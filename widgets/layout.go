package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Widget is anything that can draw itself into a width x height cell.
type Widget interface {
	Render(width, height int) string
}

// Text is a Widget wrapping a pre-rendered string.
type Text string

func (t Text) Render(width, height int) string {
	return fitCanvas(string(t), width, height)
}

type VStack struct {
	Widgets []Widget
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitSizes(height, len(v.Widgets), v.Ratios)
	parts := make([]string, 0, len(v.Widgets))
	for i, w := range v.Widgets {
		if heights[i] <= 0 {
			continue
		}
		parts = append(parts, fitCanvas(w.Render(width, heights[i]), width, heights[i]))
	}
	return strings.Join(parts, "\n")
}

type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitSizes(max(1, width-gapTotal), len(h.Widgets), h.Ratios)
	columns := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		columns[i] = splitToLines(w.Render(max(1, widths[i]), height), height)
	}
	gap := strings.Repeat(" ", h.Gap)
	out := make([]string, height)
	for line := 0; line < height; line++ {
		cols := make([]string, len(columns))
		for i := range columns {
			cols[i] = padRight(columns[i][line], widths[i])
		}
		out[line] = strings.Join(cols, gap)
	}
	return strings.Join(out, "\n")
}

// splitSizes divides total between n parts by ratio; missing or mismatched
// ratios mean equal parts.
func splitSizes(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		sum += math.Max(r, 0.0001)
	}
	used := 0
	for i, r := range ratios {
		out[i] = int(math.Floor(math.Max(r, 0.0001) / sum * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
