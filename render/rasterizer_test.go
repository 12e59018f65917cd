package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCanvasSize = 32

// newTestRasterizer looks down -Z at the origin from z=10
func newTestRasterizer() (*Rasterizer, MaterialID, MaterialID) {
	mt := NewMaterialTable()
	red := mt.Add(Material{Name: "red", Color: colorful.Color{R: 1}, Ambient: 1})
	green := mt.Add(Material{Name: "green", Color: colorful.Color{G: 1}, Ambient: 1})

	r := NewRasterizer(NewCanvas(testCanvasSize, testCanvasSize), mt)
	r.SetCamera(
		mgl64.LookAtV(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0}),
		mgl64.Perspective(math.Pi/4, 1, 1, 100),
	)
	r.Begin()
	return r, red, green
}

func TestBeginClearsToSky(t *testing.T) {
	r, _, _ := newTestRasterizer()
	sky, _ := r.Materials.Get(MaterialSky)
	cr, cg, cb := sky.Color.RGB255()
	assert.Equal(t, color.RGBA{R: cr, G: cg, B: cb, A: 255}, r.Canvas.At(0, 0))
	assert.True(t, math.IsInf(r.Canvas.DepthAt(0, 0), 1))
}

func TestDepthTestKeepsNearestSurface(t *testing.T) {
	center := testCanvasSize / 2
	near := mgl64.Translate3D(0, 0, 3)
	far := mgl64.Ident4()

	for _, order := range []string{"far first", "near first"} {
		t.Run(order, func(t *testing.T) {
			r, red, green := newTestRasterizer()
			if order == "far first" {
				r.Draw(MeshCube, far, red)
				r.Draw(MeshCube, near, green)
			} else {
				r.Draw(MeshCube, near, green)
				r.Draw(MeshCube, far, red)
			}
			assert.Equal(t, color.RGBA{G: 255, A: 255}, r.Canvas.At(center, center))
			assert.Less(t, r.Canvas.DepthAt(center, center), 1.0)
			assert.Greater(t, r.Stats.Fragment, 0)
		})
	}
}

func TestTrianglesBehindCameraAreDropped(t *testing.T) {
	r, red, _ := newTestRasterizer()
	r.Draw(MeshCube, mgl64.Translate3D(0, 0, 20), red)

	assert.Equal(t, 12, r.Stats.Clipped)
	assert.Zero(t, r.Stats.Drawn)
	assert.Zero(t, r.Stats.Fragment)
}

func TestOffscreenTrianglesAreCulled(t *testing.T) {
	r, red, _ := newTestRasterizer()
	r.Draw(MeshCube, mgl64.Translate3D(40, 0, 0), red)

	assert.Zero(t, r.Stats.Fragment)
	assert.Greater(t, r.Stats.Culled, 0)
}

func TestUnknownMeshOrMaterialIsIgnored(t *testing.T) {
	r, _, _ := newTestRasterizer()
	r.Draw(MeshCount, mgl64.Ident4(), MaterialBody)
	r.Draw(MeshCube, mgl64.Ident4(), MaterialID(999))
	assert.Equal(t, RasterStats{}, r.Stats)
}

func TestShadingRespectsFloorAndCeiling(t *testing.T) {
	r, _, _ := newTestRasterizer()
	a, b, c := mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}

	dark := Material{Ambient: 0, Diffuse: 0}
	assert.Equal(t, r.floor, r.shade(a, b, c, dark))

	bright := Material{Ambient: 1, Diffuse: 1}
	assert.Equal(t, 1.0, r.shade(a, b, c, bright))

	// Degenerate face falls back to ambient only
	lit := Material{Ambient: 0.8, Diffuse: 1}
	assert.Equal(t, 0.8, r.shade(a, a, a, lit))
}

func TestCanvasResizeKeepsCapacity(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Resize(4, 4)
	assert.Len(t, c.Depth, 16)
	assert.Equal(t, 64, cap(c.Depth))

	c.Resize(16, 2)
	require.Len(t, c.Color, 16*2*3)
	img := c.Image()
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, uint8(255), img.Pix[3])
}
