package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"#", "Hex", "RGB"})
	table.AddRow([]string{"1", "#ff0000", "rgb(255, 0, 0)"})
	table.AddRow([]string{"2", "#00ff00", "rgb(0, 255, 0)"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Render produced %d lines, want header, separator and 2 rows:\n%s", len(lines), out)
	}

	for _, want := range []string{"Hex", "#ff0000", "#00ff00", "rgb(255, 0, 0)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("second line is not a separator: %q", lines[1])
	}
}

func TestTableColumnAlignment(t *testing.T) {
	table := NewTable([]string{"A", "B"})
	table.AddRow([]string{"short", "x"})
	table.AddRow([]string{"a-much-longer-cell", "y"})

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")

	// Every line places column B at the same offset.
	xCol := strings.Index(lines[2], "x")
	yCol := strings.Index(lines[3], "y")
	if xCol != yCol {
		t.Errorf("column B misaligned: x at %d, y at %d", xCol, yCol)
	}
}

func TestTableShortRowPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow([]string{"only-a"})

	out := table.Render()
	if !strings.Contains(out, "only-a") {
		t.Errorf("Render output missing the row content:\n%s", out)
	}
}

func TestTableNoHeaders(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Render with no headers = %q, want empty", out)
	}
}
