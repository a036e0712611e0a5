package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPrint(t *testing.T) {
	outWriter := &bytes.Buffer{}
	out, err := New("json", &Config{OutWriter: outWriter, ErrWriter: &bytes.Buffer{}})
	require.NoError(t, err)

	out.Print(map[string]string{"root": "/tmp/ws"})
	assert.JSONEq(t, `{"root": "/tmp/ws"}`, outWriter.String())
}

func TestJSONError(t *testing.T) {
	errWriter := &bytes.Buffer{}
	out, err := New("json", &Config{OutWriter: &bytes.Buffer{}, ErrWriter: errWriter})
	require.NoError(t, err)

	out.Error("kaboom")
	assert.JSONEq(t, `{"error": "kaboom"}`, errWriter.String())
}

func TestJSONNoticeSilent(t *testing.T) {
	outWriter := &bytes.Buffer{}
	errWriter := &bytes.Buffer{}
	out, err := New("json", &Config{OutWriter: outWriter, ErrWriter: errWriter})
	require.NoError(t, err)

	out.Notice("should not appear")
	assert.Empty(t, outWriter.String())
	assert.Empty(t, errWriter.String())
}
