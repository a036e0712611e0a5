package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskenv/cli/internal/colorize"
)

func TestRender(t *testing.T) {
	tbl := New([]string{"ID", "Task"})
	tbl.AddRow([]string{"1", "Water the plants"})
	tbl.AddRow([]string{"2", "Write tests"})

	rendered := colorize.StripColorTags(tbl.Render())
	lines := strings.Split(rendered, "\n")
	assert.Len(t, lines, 4, "header, divider and two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "Task")
	assert.Contains(t, lines[2], "Water the plants")
	assert.Contains(t, lines[3], "Write tests")
}

func TestRenderEmpty(t *testing.T) {
	tbl := New([]string{"ID", "Task"})
	assert.Equal(t, "", tbl.Render())
}

func TestCalculateWidthCaps(t *testing.T) {
	tbl := New([]string{"A", "B"})
	tbl.AddRow([]string{"short", strings.Repeat("x", 500)})

	widths, total := tbl.calculateWidth(80)
	assert.LessOrEqual(t, total, 80)
	for _, w := range widths {
		assert.LessOrEqual(t, w, 80)
	}
}

func TestRenderWrapsLongValues(t *testing.T) {
	tbl := New([]string{"A", "B"})
	long := strings.Repeat("y", 500)
	tbl.AddRow([]string{"short", long})

	rendered := colorize.StripColorTags(tbl.Render())
	lines := strings.Split(rendered, "\n")
	assert.Greater(t, len(lines), 3, "long value must wrap over multiple lines")
	assert.NotContains(t, rendered, long, "no single line holds the whole value")
}
