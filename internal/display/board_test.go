package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tscpgo/internal/display"
	"tscpgo/internal/engine"
)

func TestRenderShowsCoordinatesAndBackRanks(t *testing.T) {
	cfg := display.DefaultConfig()
	cfg.UseColors = false
	r := display.NewRenderer(cfg)

	out := r.Render(engine.NewGame())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[0], "8 "))
	assert.True(t, strings.HasPrefix(lines[7], "1 "))
	assert.Equal(t, "  a b c d e f g h", lines[8])
	assert.Contains(t, lines[0], "r")
	assert.Contains(t, lines[7], "R")
}

func TestRenderUnicodeUsesGlyphsNotLetters(t *testing.T) {
	cfg := display.DefaultConfig()
	cfg.UseColors = false
	cfg.UseUnicode = true
	r := display.NewRenderer(cfg)

	out := r.Render(engine.NewGame())
	assert.Contains(t, out, "♜")
	assert.Contains(t, out, "♖")
	assert.NotContains(t, out, "R ")
}

func TestSideNaming(t *testing.T) {
	assert.Equal(t, "White", display.Side(engine.Light))
	assert.Equal(t, "Black", display.Side(engine.Dark))
}
