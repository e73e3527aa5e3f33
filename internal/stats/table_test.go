package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Metric", "Value"}
	rows := [][]string{
		{"WPM", "61.20"},
		{"Accuracy", "8.00%"},
	}
	rightAlign := map[int]bool{1: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Metric   Value" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "WPM      61.20" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Accuracy 8.00%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable(nil, [][]string{{"日本", "x"}, {"ab", "y"}}, nil)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "ab   y" {
		t.Fatalf("expected wide runes to count double: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected no lines, got %v", lines)
	}
}
