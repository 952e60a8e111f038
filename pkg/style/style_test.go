package style

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Error", "Warning", "Prefix", "MenuIndex", "MenuItem", "Prompt", "Path", "Muted"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}
}

func TestLoadStylesFromDataRejectsGarbage(t *testing.T) {
	err := LoadStylesFromData([]byte("colors: [unterminated"))
	assert.Error(t, err)
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}

func TestGetStyleUnknownIsPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "text", GetStyle("DoesNotExist").Render("text"))
}

func TestWarnIsSingleLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	Warn(&buf, "no directories matching \"proj\"")

	assert.Equal(t, "smartcd: no directories matching \"proj\"\n", buf.String())
}

func TestSetupColorsWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.False(t, IsTerminal(nil))

	SetupColors(f)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
}
