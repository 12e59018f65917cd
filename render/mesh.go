package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle list in model space
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
}

// Tessellation for the terminal-sized targets
const (
	sphereRings    = 8
	sphereSegments = 12
	palmLeaves     = 6
)

var meshTable = [MeshCount]*Mesh{
	MeshCube:   newCube(),
	MeshSphere: newSphere(sphereRings, sphereSegments),
	MeshFish:   newFish(),
	MeshPalm:   newPalm(),
}

// LookupMesh returns the shared mesh for id, nil if unknown
// Returned meshes are read-only
func LookupMesh(id MeshID) *Mesh {
	if id >= MeshCount {
		return nil
	}
	return meshTable[id]
}

// append merges o into m, transforming its vertices by xf
func (m *Mesh) append(o *Mesh, xf mgl64.Mat4) {
	base := len(m.Vertices)
	for _, v := range o.Vertices {
		m.Vertices = append(m.Vertices, mgl64.TransformCoordinate(v, xf))
	}
	for _, f := range o.Faces {
		m.Faces = append(m.Faces, [3]int{f[0] + base, f[1] + base, f[2] + base})
	}
}

// newCube spans [-1, 1] on every axis
func newCube() *Mesh {
	m := &Mesh{
		Vertices: []mgl64.Vec3{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // -z
		{4, 5, 6, 7}, // +z
		{0, 1, 5, 4}, // -y
		{2, 3, 7, 6}, // +y
		{1, 2, 6, 5}, // +x
		{0, 4, 7, 3}, // -x
	}
	for _, q := range quads {
		m.Faces = append(m.Faces, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return m
}

// newSphere builds a unit UV sphere with poles on Z
func newSphere(rings, segments int) *Mesh {
	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		z := math.Cos(phi)
		ring := math.Sin(phi)
		for s := 0; s < segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			m.Vertices = append(m.Vertices, mgl64.Vec3{ring * math.Cos(theta), ring * math.Sin(theta), z})
		}
	}
	at := func(r, s int) int { return r*segments + s%segments }
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a, b := at(r, s), at(r, s+1)
			c, d := at(r+1, s+1), at(r+1, s)
			if r > 0 {
				m.Faces = append(m.Faces, [3]int{a, d, b})
			}
			if r < rings-1 {
				m.Faces = append(m.Faces, [3]int{b, d, c})
			}
		}
	}
	return m
}

// newFish is an ellipsoid body facing +X with a forked tail
func newFish() *Mesh {
	m := &Mesh{}
	m.append(newSphere(6, 10), mgl64.Scale3D(1, 0.35, 0.5))

	tail := &Mesh{
		Vertices: []mgl64.Vec3{
			{-0.85, 0, 0}, {-1.5, 0, 0.45}, {-1.5, 0, -0.45}, {-1.3, 0, 0},
		},
		Faces: [][3]int{{0, 1, 3}, {0, 3, 2}},
	}
	m.append(tail, mgl64.Ident4())
	return m
}

// newPalm is a trunk along +Y topped by drooping leaves
func newPalm() *Mesh {
	m := &Mesh{}
	m.append(newCube(), mgl64.Translate3D(0, 0.5, 0).Mul4(mgl64.Scale3D(0.12, 1.5, 0.12)))

	crown := mgl64.Vec3{0, 2, 0}
	for i := 0; i < palmLeaves; i++ {
		a := 2 * math.Pi * float64(i) / palmLeaves
		dir := mgl64.Vec3{math.Cos(a), 0, math.Sin(a)}
		side := mgl64.Vec3{-dir.Z(), 0, dir.X()}.Mul(0.25)
		mid := crown.Add(dir.Mul(0.7)).Add(mgl64.Vec3{0, 0.15, 0})
		tip := crown.Add(dir.Mul(1.4)).Add(mgl64.Vec3{0, -0.5, 0})

		base := len(m.Vertices)
		m.Vertices = append(m.Vertices, crown, mid.Add(side), tip, mid.Sub(side))
		m.Faces = append(m.Faces,
			[3]int{base, base + 1, base + 2},
			[3]int{base, base + 2, base + 3},
		)
	}
	return m
}
