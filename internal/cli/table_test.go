package cli

import (
	"strings"
	"testing"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable("Name", "Ratio")

	table.AddRow("white", "21.00:1")
	table.AddRow("short")
	table.AddRow("long", "1.00:1", "extra")

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("padded cell = %q, want empty", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Colour", "Ratio", "Rating")
	table.AlignRight(1)
	table.AddRow("#1e293b", "14.63:1", "Excellent")
	table.AddRow("#808080", "3.95:1", "Fair")

	want := strings.Join([]string{
		"Colour     Ratio  Rating",
		"-------  -------  ---------",
		"#1e293b  14.63:1  Excellent",
		"#808080   3.95:1  Fair",
		"",
	}, "\n")
	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableWidths(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "#ffffff", want: 7},
		{name: "ansi ignored", in: "\x1b[48;2;0;0;0m    \x1b[0m", want: 4},
		{name: "wide runes", in: "色彩", want: 4},
		{name: "empty", in: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayWidth(tt.in); got != tt.want {
				t.Errorf("displayWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTableMaxWidth(t *testing.T) {
	table := NewTable("Properties")
	table.SetColumnMaxWidth(0, 10)
	table.AddRow("background-color, border-color")

	got := table.rows[0][0]
	if displayWidth(got) > 10 {
		t.Errorf("truncated cell %q is %d columns wide, want <= 10", got, displayWidth(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated cell %q missing ellipsis", got)
	}
}

func TestTableSkipsEmptyColumns(t *testing.T) {
	table := NewTable("", "Hex", "Share")
	table.AddRow("", "#000000", "")

	want := "Hex\n-------\n#000000\n"
	if got := table.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Render() of headerless table = %q, want empty", got)
	}
}
