package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeshTableIsComplete(t *testing.T) {
	for id := MeshID(0); id < MeshCount; id++ {
		m := LookupMesh(id)
		if assert.NotNil(t, m, id.String()) {
			assert.NotEmpty(t, m.Faces, id.String())
			for _, f := range m.Faces {
				for _, i := range f {
					assert.True(t, i >= 0 && i < len(m.Vertices), "%s face index %d out of range", id, i)
				}
			}
		}
	}
	assert.Nil(t, LookupMesh(MeshCount))
}

func TestCubeSpansUnitExtent(t *testing.T) {
	m := LookupMesh(MeshCube)
	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Faces, 12)
	for _, v := range m.Vertices {
		for i := 0; i < 3; i++ {
			assert.Equal(t, 1.0, v[i]*v[i])
		}
	}
}

func TestSphereVerticesOnUnitSphere(t *testing.T) {
	for _, v := range LookupMesh(MeshSphere).Vertices {
		assert.InDelta(t, 1.0, v.Len(), 1e-9)
	}
}

func TestFishFacesPositiveX(t *testing.T) {
	minX, maxX := 0.0, 0.0
	for _, v := range LookupMesh(MeshFish).Vertices {
		minX = min(minX, v.X())
		maxX = max(maxX, v.X())
	}
	assert.InDelta(t, 1.0, maxX, 1e-9, "nose")
	assert.InDelta(t, -1.5, minX, 1e-9, "tail")
}

func TestPalmGrowsAlongY(t *testing.T) {
	top := 0.0
	for _, v := range LookupMesh(MeshPalm).Vertices {
		top = max(top, v.Y())
	}
	assert.InDelta(t, 2.15, top, 1e-9)
}
