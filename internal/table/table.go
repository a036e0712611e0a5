package table

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const dash = "─"
const linebreak = "\n"
const padding = 2

// defaultWidth is what we render against when the terminal width can't be detected
const defaultWidth = 100

type row struct {
	columns []string
}

type Table struct {
	headers []string
	rows    []row
}

func New(headers []string) *Table {
	return &Table{headers, []row{}}
}

func (t *Table) AddRow(vs ...[]string) *Table {
	for _, v := range vs {
		t.rows = append(t.rows, row{v})
	}
	return t
}

func (t *Table) Render() string {
	if len(t.rows) == 0 {
		return ""
	}

	termWidth := terminalWidth()
	colWidths, total := t.calculateWidth(termWidth)

	out := ""
	out += renderRow(t.headers, colWidths) + linebreak
	out += "[DISABLED]" + strings.Repeat(dash, total) + "[/RESET]" + linebreak
	for _, row := range t.rows {
		out += renderRow(row.columns, colWidths) + linebreak
	}

	return strings.TrimRight(out, linebreak)
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func (t *Table) calculateWidth(maxTotalWidth int) ([]int, int) {
	// Calculate required width of each column
	colWidths := make([]int, len(t.headers))
	for n, header := range t.headers {
		colWidths[n] = runewidth.StringWidth(header)
		for _, row := range t.rows {
			if n < len(row.columns) && colWidths[n] < runewidth.StringWidth(row.columns[n]) {
				colWidths[n] = runewidth.StringWidth(row.columns[n])
			}
		}
	}

	// Add padding and calculate total
	total := 0
	for n, w := range colWidths {
		colWidths[n] = w + (padding * 2)
		total += colWidths[n]
	}

	// If over max total; reduce size according to percentage of total
	if total > maxTotalWidth {
		for n, w := range colWidths {
			colWidths[n] = int(float64(w) / float64(total) * float64(maxTotalWidth))
		}
		total = maxTotalWidth
	}

	return colWidths, total
}

func renderRow(providedColumns []string, colWidths []int) string {
	// don't want to modify the provided slice
	columns := make([]string, len(providedColumns))
	copy(columns, providedColumns)

	result := ""

	// Keep rendering lines until there's no column data left to render
	for hasContent(columns) {
		line := ""
		for n, maxlen := range colWidths {
			if n >= len(columns) {
				break
			}

			maxlen = maxlen - (padding * 2)
			if maxlen < 1 {
				maxlen = 1
			}

			// How much of the column value are we using this line?
			colValue := columns[n]
			value := colValue
			if runewidth.StringWidth(colValue) > maxlen {
				value = runewidth.Truncate(colValue, maxlen, "")
			}
			columns[n] = colValue[len(value):]

			suffix := strings.Repeat(" ", maxlen-runewidth.StringWidth(value))
			line += pad(value + suffix)
		}
		result += line + linebreak
	}

	return strings.TrimRight(result, linebreak)
}

func hasContent(columns []string) bool {
	for _, col := range columns {
		if col != "" {
			return true
		}
	}
	return false
}

func pad(v string) string {
	padded := strings.Repeat(" ", padding)
	return padded + v + padded
}
