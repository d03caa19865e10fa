package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := Popup(base, "Help", 20, 9, lipgloss.NewStyle().Border(lipgloss.RoundedBorder()))
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Help") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestHStackPlacesColumnsSideBySide(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{3, 1}, Gap: 1}
	lines := strings.Split(h.Render(21, 2), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d", len(lines))
	}
	plain := ansi.Strip(lines[0])
	if !strings.HasPrefix(plain, "A") || strings.Index(plain, "B") != 16 {
		t.Fatalf("unexpected layout %q", plain)
	}
}

func TestVStackKeepsBothWidgets(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}}
	out := v.Render(20, 6)
	if !strings.Contains(out, "top") || !strings.Contains(out, "bottom") {
		t.Fatalf("expected both widgets in output")
	}
	if n := len(strings.Split(out, "\n")); n != 6 {
		t.Fatalf("line count = %d, want 6", n)
	}
}

func TestSplitSizes(t *testing.T) {
	got := splitSizes(10, 3, nil)
	if got[0]+got[1]+got[2] != 10 || got[0] != 4 {
		t.Fatalf("equal split = %v", got)
	}
	got = splitSizes(8, 2, []float64{3, 1})
	if got[0] != 6 || got[1] != 2 {
		t.Fatalf("ratio split = %v", got)
	}
}

func TestCalendarRendersGrid(t *testing.T) {
	cal := Calendar{
		Title:  "March 2024",
		Header: []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"},
		Weeks: [][]CalendarCell{
			{{Label: "26", Outside: true}, {Label: "27", Outside: true}, {Label: "28", Outside: true}, {Label: "29", Outside: true}, {Label: "1", Cursor: true}, {Label: "2"}, {Label: "3", Blocked: true}},
		},
		Styles: DefaultStyles(),
	}
	out := cal.Render(GridWidth(), 3)
	lines := strings.Split(ansi.Strip(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d", len(lines))
	}
	if !strings.Contains(lines[0], "March 2024") {
		t.Fatalf("missing title: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Mo  Tu") {
		t.Fatalf("unexpected header %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], " 26  27  28  29   1   2   3") {
		t.Fatalf("unexpected week row %q", lines[2])
	}
}

func TestDetailsAlignsLabels(t *testing.T) {
	out := ansi.Strip(Details{Fields: []Field{{"Start", "2024-03-05"}, {"End", ""}}, Styles: DefaultStyles()}.Render(30, 5))
	lines := strings.Split(out, "\n")
	if strings.TrimRight(lines[0], " ") != "Start  2024-03-05" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if strings.TrimRight(lines[1], " ") != "End    -" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestBoxIncludesTitle(t *testing.T) {
	out := ansi.Strip(Box{Title: "Calendar", Content: "body"}.Render(20, 5))
	if !strings.Contains(out, "[Calendar]") || !strings.Contains(out, "body") {
		t.Fatalf("unexpected box %q", out)
	}
}
