package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas holds an RGB target and a depth buffer as flat slices
// Depth is NDC z, smaller is nearer, cleared to +Inf
type Canvas struct {
	Width  int
	Height int
	Color  []uint8 // RGB interleaved, len = W*H*3
	Depth  []float64
}

// NewCanvas allocates a cleared w×h canvas
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates only when the pixel count grows
func (c *Canvas) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	c.Width, c.Height = w, h
	if cap(c.Depth) < n {
		c.Color = make([]uint8, n*3)
		c.Depth = make([]float64, n)
	}
	c.Color = c.Color[:n*3]
	c.Depth = c.Depth[:n]
	c.Clear(color.RGBA{})
}

// Clear fills the color plane with bg and resets depth
func (c *Canvas) Clear(bg color.RGBA) {
	for i := 0; i < len(c.Depth); i++ {
		c.Color[i*3] = bg.R
		c.Color[i*3+1] = bg.G
		c.Color[i*3+2] = bg.B
		c.Depth[i] = math.Inf(1)
	}
}

// At returns the pixel at x, y; out of range reads are black
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{A: 255}
	}
	i := (y*c.Width + x) * 3
	return color.RGBA{R: c.Color[i], G: c.Color[i+1], B: c.Color[i+2], A: 255}
}

// DepthAt returns the stored depth at x, y
func (c *Canvas) DepthAt(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return math.Inf(1)
	}
	return c.Depth[y*c.Width+x]
}

// plot writes rgb at x, y when z passes the depth test
func (c *Canvas) plot(x, y int, z float64, r, g, b uint8) bool {
	i := y*c.Width + x
	if z >= c.Depth[i] {
		return false
	}
	c.Depth[i] = z
	c.Color[i*3] = r
	c.Color[i*3+1] = g
	c.Color[i*3+2] = b
	return true
}

// Image copies the color plane into an opaque NRGBA image
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i < c.Width*c.Height; i++ {
		img.Pix[i*4] = c.Color[i*3]
		img.Pix[i*4+1] = c.Color[i*3+1]
		img.Pix[i*4+2] = c.Color[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
