package render

import "github.com/go-gl/mathgl/mgl64"

// MeshID selects an entry of the shared mesh table
type MeshID uint8

const (
	MeshCube MeshID = iota
	MeshSphere
	MeshFish
	MeshPalm
	MeshCount
)

var meshNames = [MeshCount]string{"cube", "sphere", "fish", "palm"}

func (m MeshID) String() string {
	if m < MeshCount {
		return meshNames[m]
	}
	return "unknown"
}

// MaterialID indexes a MaterialTable
type MaterialID uint16

// Sink consumes one frame of draw calls
// The frame driver has no other coupling to the rendering backend
type Sink interface {
	Draw(mesh MeshID, transform mgl64.Mat4, material MaterialID)
}

// DrawCall is a recorded Sink.Draw invocation
type DrawCall struct {
	Mesh      MeshID
	Transform mgl64.Mat4
	Material  MaterialID
}

// Recorder is a Sink that keeps every call in order
type Recorder struct {
	Calls []DrawCall
}

// Draw appends the call
func (r *Recorder) Draw(mesh MeshID, transform mgl64.Mat4, material MaterialID) {
	r.Calls = append(r.Calls, DrawCall{Mesh: mesh, Transform: transform, Material: material})
}

// Reset clears recorded calls, keeping capacity
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// ByMaterial returns the calls drawn with material, in draw order
func (r *Recorder) ByMaterial(material MaterialID) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Material == material {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of calls that drew mesh
func (r *Recorder) Count(mesh MeshID) int {
	n := 0
	for _, c := range r.Calls {
		if c.Mesh == mesh {
			n++
		}
	}
	return n
}

// Fanout forwards each draw to every sink in order
type Fanout []Sink

// Draw implements Sink
func (f Fanout) Draw(mesh MeshID, transform mgl64.Mat4, material MaterialID) {
	for _, s := range f {
		s.Draw(mesh, transform, material)
	}
}
