package render

import (
	"github.com/gdamore/tcell/v2"
)

const upperHalfBlock = '▀'

// TerminalOutput blits canvases onto a tcell screen, two pixels per cell
// The top HUDRows rows are left for text
type TerminalOutput struct {
	screen  tcell.Screen
	HUDRows int
}

// NewTerminalOutput wraps an initialized screen
func NewTerminalOutput(screen tcell.Screen, hudRows int) *TerminalOutput {
	return &TerminalOutput{screen: screen, HUDRows: hudRows}
}

// CanvasSize returns the pixel size of the drawable area under the HUD
func (t *TerminalOutput) CanvasSize() (int, int) {
	w, h := t.screen.Size()
	h -= t.HUDRows
	if h < 0 {
		h = 0
	}
	return w, h * 2
}

// Blit draws c with upper half blocks, foreground is the top pixel and background the bottom
func (t *TerminalOutput) Blit(c *Canvas) {
	w, h := t.screen.Size()
	for row := 0; row+t.HUDRows < h; row++ {
		for x := 0; x < w && x < c.Width; x++ {
			top := c.At(x, row*2)
			bottom := c.At(x, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, row+t.HUDRows, upperHalfBlock, nil, style)
		}
	}
}

// Text writes s at x, y, clipped to the screen width
func (t *TerminalOutput) Text(x, y int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// ClearHUD blanks the HUD rows
func (t *TerminalOutput) ClearHUD(style tcell.Style) {
	w, _ := t.screen.Size()
	for y := 0; y < t.HUDRows; y++ {
		for x := 0; x < w; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
