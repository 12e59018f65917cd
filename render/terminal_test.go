package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestCanvasSizeExcludesHUD(t *testing.T) {
	out := NewTerminalOutput(newSimScreen(t, 40, 12), 2)
	w, h := out.CanvasSize()
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	tiny := NewTerminalOutput(newSimScreen(t, 10, 1), 2)
	_, h = tiny.CanvasSize()
	assert.Zero(t, h)
}

func TestBlitPacksTwoPixelsPerCell(t *testing.T) {
	screen := newSimScreen(t, 4, 3)
	out := NewTerminalOutput(screen, 1)

	c := NewCanvas(4, 4)
	c.Clear(color.RGBA{B: 200, A: 255})
	c.plot(1, 0, 0, 255, 0, 0) // top half of cell (1, 1)
	c.plot(1, 1, 0, 0, 255, 0) // bottom half of cell (1, 1)
	out.Blit(c)

	mainc, _, style, _ := screen.GetContent(1, 1)
	assert.Equal(t, upperHalfBlock, mainc)
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(255, 0, 0)).
		Background(tcell.NewRGBColor(0, 255, 0))
	assert.Equal(t, want, style)

	// HUD row is untouched
	mainc, _, _, _ = screen.GetContent(1, 0)
	assert.NotEqual(t, upperHalfBlock, mainc)
}

func TestTextClipsAtScreenEdge(t *testing.T) {
	screen := newSimScreen(t, 5, 2)
	out := NewTerminalOutput(screen, 1)
	out.ClearHUD(tcell.StyleDefault)
	out.Text(2, 0, "catch", tcell.StyleDefault)

	for x, want := range []rune{' ', ' ', 'c', 'a', 't'} {
		mainc, _, _, _ := screen.GetContent(x, 0)
		assert.Equal(t, want, mainc, "column %d", x)
	}
}
