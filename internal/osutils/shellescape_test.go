package osutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	esc := NewBashEscaper()
	assert.Equal(t, `hello`, esc.Quote("hello"))
	assert.Equal(t, `/usr/local/bin`, esc.Quote("/usr/local/bin"))
	assert.Equal(t, `"hello world"`, esc.Quote("hello world"))
	assert.Equal(t, `"say \"hi\""`, esc.Quote(`say "hi"`))
	assert.Equal(t, `"\$HOME"`, esc.Quote("$HOME"))
	assert.Equal(t, `""`, esc.Quote(""))
}

func TestEnvMapRoundtrip(t *testing.T) {
	env := map[string]string{"A": "1", "B": "two words"}
	slice := EnvMapToSlice(env)
	assert.Equal(t, []string{"A=1", "B=two words"}, slice)
	assert.Equal(t, env, EnvSliceToMap(slice))
}
