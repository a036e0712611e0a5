package colorize

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripColorTags(t *testing.T) {
	assert.Equal(t, "Hello World", StripColorTags("[HEADING]Hello[/RESET] World"))
	assert.Equal(t, "untagged", StripColorTags("untagged"))
}

func TestColorizedOrStrip(t *testing.T) {
	var buf bytes.Buffer
	_, err := ColorizedOrStrip("[ERROR]oops[/RESET]", &buf, false)
	require.NoError(t, err)
	assert.Equal(t, "oops", buf.String())
}
