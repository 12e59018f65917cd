package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/vmath"
)

// RasterStats counts triangles seen during a frame
type RasterStats struct {
	Drawn    int // at least partially rasterized
	Clipped  int // rejected for crossing the near plane
	Culled   int // degenerate or fully off-screen
	Fragment int // pixels that passed the depth test
}

// Rasterizer is a Sink that renders flat-shaded triangles onto a Canvas
// Triangles with any vertex behind the near plane are dropped, not clipped
type Rasterizer struct {
	Canvas    *Canvas
	Materials *MaterialTable
	Stats     RasterStats

	viewProj mgl64.Mat4
	light    mgl64.Vec3
	floor    float64

	// Scratch, reused between draws
	world  []mgl64.Vec3
	screen []mgl64.Vec3
	behind []bool
}

// NewRasterizer binds a canvas and a material table
func NewRasterizer(canvas *Canvas, materials *MaterialTable) *Rasterizer {
	r := &Rasterizer{
		Canvas:    canvas,
		Materials: materials,
		viewProj:  mgl64.Ident4(),
		floor:     parameter.AmbientLight,
	}
	r.SetLight(parameter.LightDirection)
	return r
}

// SetCamera sets the view and projection used by subsequent draws
func (r *Rasterizer) SetCamera(view, projection mgl64.Mat4) {
	r.viewProj = projection.Mul4(view)
}

// SetLight sets the world-space direction toward the light
func (r *Rasterizer) SetLight(dir mgl64.Vec3) {
	if dir.Len() == 0 {
		dir = mgl64.Vec3{0, 0, 1}
	}
	r.light = dir.Normalize()
}

// Begin clears the canvas and the frame counters
func (r *Rasterizer) Begin() {
	bg, _ := r.Materials.Get(MaterialSky)
	cr, cg, cb := bg.Color.Clamped().RGB255()
	r.Canvas.Clear(rgba(cr, cg, cb))
	r.Stats = RasterStats{}
}

// Draw implements Sink
func (r *Rasterizer) Draw(id MeshID, transform mgl64.Mat4, material MaterialID) {
	mesh := LookupMesh(id)
	mat, ok := r.Materials.Get(material)
	if mesh == nil || !ok {
		return
	}

	mvp := r.viewProj.Mul4(transform)
	r.grow(len(mesh.Vertices))
	w, h := float64(r.Canvas.Width), float64(r.Canvas.Height)
	for i, v := range mesh.Vertices {
		r.world[i] = mgl64.TransformCoordinate(v, transform)

		clip := mvp.Mul4x1(v.Vec4(1))
		if clip.W() <= 1e-6 || clip.Z() < -clip.W() {
			r.behind[i] = true
			continue
		}
		r.behind[i] = false
		inv := 1 / clip.W()
		r.screen[i] = mgl64.Vec3{
			(clip.X()*inv*0.5 + 0.5) * w,
			(0.5 - clip.Y()*inv*0.5) * h,
			clip.Z() * inv,
		}
	}

	for _, f := range mesh.Faces {
		if r.behind[f[0]] || r.behind[f[1]] || r.behind[f[2]] {
			r.Stats.Clipped++
			continue
		}
		shade := r.shade(r.world[f[0]], r.world[f[1]], r.world[f[2]], mat)
		c := colorful.Color{R: mat.Color.R * shade, G: mat.Color.G * shade, B: mat.Color.B * shade}
		cr, cg, cb := c.Clamped().RGB255()
		r.fill(r.screen[f[0]], r.screen[f[1]], r.screen[f[2]], cr, cg, cb)
	}
}

func (r *Rasterizer) grow(n int) {
	if cap(r.world) < n {
		r.world = make([]mgl64.Vec3, n)
		r.screen = make([]mgl64.Vec3, n)
		r.behind = make([]bool, n)
	}
	r.world = r.world[:n]
	r.screen = r.screen[:n]
	r.behind = r.behind[:n]
}

// shade is two-sided Lambert on the world-space face normal
func (r *Rasterizer) shade(a, b, c mgl64.Vec3, m Material) float64 {
	n := b.Sub(a).Cross(c.Sub(a))
	ndl := 0.0
	if l := n.Len(); l > 1e-12 {
		ndl = math.Abs(n.Mul(1 / l).Dot(r.light))
	}
	return vmath.Clamp(m.Ambient+m.Diffuse*(1-m.Ambient)*ndl, r.floor, 1)
}

// fill rasterizes one screen-space triangle with barycentric coverage and depth test
func (r *Rasterizer) fill(p0, p1, p2 mgl64.Vec3, cr, cg, cb uint8) {
	cv := r.Canvas
	x0, y0, z0 := p0.X(), p0.Y(), p0.Z()
	x1, y1, z1 := p1.X(), p1.Y(), p1.Z()
	x2, y2, z2 := p2.X(), p2.Y(), p2.Z()

	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))
	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, cv.Width-1)
	maxY = min(maxY, cv.Height-1)
	if minX > maxX || minY > maxY {
		r.Stats.Culled++
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if math.Abs(det) < 1e-9 {
		r.Stats.Culled++
		return
	}
	invDet := 1 / det
	dy12, dx21 := y1-y2, x2-x1
	dy20, dx02 := y2-y0, x0-x2

	r.Stats.Drawn++
	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5 - y2
		for sx := minX; sx <= maxX; sx++ {
			px := float64(sx) + 0.5 - x2
			w0 := (dy12*px + dx21*py) * invDet
			w1 := (dy20*px + dx02*py) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*z0 + w1*z1 + w2*z2
			if z > 1 {
				continue
			}
			if cv.plot(sx, sy, z, cr, cg, cb) {
				r.Stats.Fragment++
			}
		}
	}
}
