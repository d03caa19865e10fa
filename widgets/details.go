package widgets

import "strings"

// Field is one label/value row of a Details panel.
type Field struct {
	Label string
	Value string
}

// Details renders aligned "label  value" rows, truncated to height.
type Details struct {
	Fields []Field
	Styles Styles
}

func (d Details) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	labelWidth := 0
	for _, f := range d.Fields {
		labelWidth = max(labelWidth, len(f.Label))
	}
	rows := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		value := f.Value
		if value == "" {
			value = "-"
		}
		label := f.Label + strings.Repeat(" ", labelWidth-len(f.Label))
		rows = append(rows, padRight(d.Styles.Muted.Render(label)+"  "+value, width))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
