package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Letter", "Spawned", "Use %"}
	rows := [][]string{
		{"Q", "12", "8.3%"},
		{"E", "120", "75.0%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Letter Spawned Use %" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Q           12  8.3%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "E          120 75.0%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
