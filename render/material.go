package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Material is a flat-shaded surface description
type Material struct {
	Name    string
	Color   colorful.Color
	Ambient float64 // light floor, 0..1
	Diffuse float64 // Lambert weight, 0..1
}

// Built-in materials, registered in this order by NewMaterialTable
const (
	MaterialSky MaterialID = iota
	MaterialOcean
	MaterialSand
	MaterialTree
	MaterialHead
	MaterialBody
	MaterialRod
	MaterialLure
	MaterialLine
	builtinMaterialCount
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func builtinMaterials() []Material {
	return []Material{
		MaterialSky:   {Name: "sky", Color: mustHex("#87ceeb"), Ambient: 0.9, Diffuse: 0.1},
		MaterialOcean: {Name: "ocean", Color: mustHex("#1e6fa8"), Ambient: 0.7, Diffuse: 0.3},
		MaterialSand:  {Name: "sand", Color: mustHex("#ffaf40"), Ambient: 0.6, Diffuse: 0.9},
		MaterialTree:  {Name: "tree", Color: mustHex("#3f7d20"), Ambient: 0.7, Diffuse: 0.6},
		MaterialHead:  {Name: "head", Color: mustHex("#f4c542"), Ambient: 0.5, Diffuse: 0.8},
		MaterialBody:  {Name: "body", Color: mustHex("#6e6e6e"), Ambient: 0.5, Diffuse: 0.8},
		MaterialRod:   {Name: "rod", Color: mustHex("#8b4513"), Ambient: 0.7, Diffuse: 0.6},
		MaterialLure:  {Name: "lure", Color: mustHex("#ff0000"), Ambient: 0.7, Diffuse: 0.6},
		MaterialLine:  {Name: "line", Color: mustHex("#000000"), Ambient: 0.7, Diffuse: 0.6},
	}
}

// MaterialTable maps MaterialID to Material
// Built-ins occupy the low ids, per-scene materials are appended with Add
type MaterialTable struct {
	entries []Material
}

// NewMaterialTable returns a table holding the built-in materials
func NewMaterialTable() *MaterialTable {
	return &MaterialTable{entries: builtinMaterials()}
}

// Add registers m and returns its id
func (t *MaterialTable) Add(m Material) MaterialID {
	t.entries = append(t.entries, m)
	return MaterialID(len(t.entries) - 1)
}

// Get returns the material for id
func (t *MaterialTable) Get(id MaterialID) (Material, bool) {
	if int(id) >= len(t.entries) {
		return Material{}, false
	}
	return t.entries[id], true
}

// SetAmbient overrides the ambient term of id, ignored for unknown ids
func (t *MaterialTable) SetAmbient(id MaterialID, ambient float64) {
	if int(id) < len(t.entries) {
		t.entries[id].Ambient = ambient
	}
}

// Len is the number of registered materials
func (t *MaterialTable) Len() int {
	return len(t.entries)
}

// FishMaterial builds the material used for a fish of color c
func FishMaterial(name string, c colorful.Color) Material {
	return Material{Name: name, Color: c, Ambient: 0.7, Diffuse: 0.6}
}
