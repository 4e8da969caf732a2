// Package cleanup — table accumulator.
// Buffers contiguous pipe-delimited lines and renders them as one
// canonical markdown table.
package cleanup

import (
	"regexp"
	"strings"
)

// tableNoise are phrases that mark a pipe line as callout text, not data.
var tableNoise = []string{"important note", "below given"}

var whitespaceRun = regexp.MustCompile(`\s+`)

// tableBuffer accumulates table rows. The zero value is ready to use.
type tableBuffer struct {
	rows [][]string
}

// isTableLine reports whether a Normal-state line belongs to a table run.
func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.Contains(trimmed, "|") &&
		!strings.HasPrefix(trimmed, "!") &&
		!isFenceMarker(trimmed)
}

// feed cleans one pipe-delimited line and buffers it as a row.
func (t *tableBuffer) feed(line string) {
	cells := splitCells(line)
	if len(cells) == 0 {
		return
	}
	joined := strings.ToLower(strings.Join(cells, " "))
	for _, noise := range tableNoise {
		if strings.Contains(joined, noise) {
			return
		}
	}
	t.rows = append(t.rows, cells)
}

// splitCells strips inline formatting and splits a row into trimmed cells.
// Empty cells created by the outer pipes are dropped; a row with no
// content at all yields nil.
func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.ReplaceAll(line, "`", "")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "--", "")
	line = whitespaceRun.ReplaceAllString(line, " ")

	cells := strings.Split(line, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	for _, c := range cells {
		if c != "" {
			return cells
		}
	}
	return nil
}

// empty reports whether no rows are buffered.
func (t *tableBuffer) empty() bool {
	return len(t.rows) == 0
}

// flush renders the buffered rows and clears the buffer. The first row is
// the header; the table is wrapped in single blank lines.
func (t *tableBuffer) flush() []string {
	if len(t.rows) == 0 {
		return nil
	}
	defer func() { t.rows = nil }()

	maxCols := 0
	for _, row := range t.rows {
		maxCols = max(maxCols, len(row))
	}

	out := []string{"", renderRow(t.rows[0], maxCols), separatorRow(maxCols)}
	for _, row := range t.rows[1:] {
		if isFillerRow(row) {
			continue
		}
		out = append(out, renderRow(row, maxCols))
	}
	return append(out, "")
}

// renderRow pads row to width with empty cells and renders it.
func renderRow(row []string, width int) string {
	padded := make([]string, width)
	copy(padded, row)
	return "| " + strings.Join(padded, " | ") + " |"
}

func separatorRow(width int) string {
	return "|" + strings.Repeat(" --- |", width)
}

// isFillerRow reports whether every cell is empty or a bare dash.
func isFillerRow(row []string) bool {
	for _, cell := range row {
		if cell != "" && cell != "-" {
			return false
		}
	}
	return true
}
