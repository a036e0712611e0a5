package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstance(t *testing.T) *Instance {
	cfg, err := NewCustom(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { cfg.Close() })
	return cfg
}

func TestSetGet(t *testing.T) {
	cfg := newTestInstance(t)

	require.NoError(t, cfg.Set("tasks.file", "/tmp/todo.txt"))
	assert.Equal(t, "/tmp/todo.txt", cfg.GetString("tasks.file"))

	require.NoError(t, cfg.Set("flag", true))
	assert.True(t, cfg.GetBool("flag"))

	require.NoError(t, cfg.Set("count", 42))
	assert.Equal(t, 42, cfg.GetInt("count"))

	assert.False(t, cfg.IsSet("never.set"))
	assert.Equal(t, "", cfg.GetString("never.set"))
}

func TestOverwrite(t *testing.T) {
	cfg := newTestInstance(t)

	require.NoError(t, cfg.Set("key", "first"))
	require.NoError(t, cfg.Set("key", "second"))
	assert.Equal(t, "second", cfg.GetString("key"))
}

func TestGetThenSet(t *testing.T) {
	cfg := newTestInstance(t)

	require.NoError(t, cfg.Set("counter", 1))
	err := cfg.GetThenSet("counter", func(current interface{}) (interface{}, error) {
		return asInt(current) + 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.GetInt("counter"))
}

func asInt(v interface{}) int {
	f, _ := v.(float64) // json numbers decode to float64
	return int(f)
}
