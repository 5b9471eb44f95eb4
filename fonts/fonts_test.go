package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(14, 12, 20, 32))

	for _, name := range []FontName{Go, GoSmall, GoBold, GoTitle} {
		assert.NotNil(t, name.Get(), name)
	}
	assert.Greater(t, GoTitle.Get().Metrics().Height, Go.Get().Metrics().Height)
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFont("broken", []byte("not a font")))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
