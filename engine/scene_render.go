package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/fishyman/parameter"
	"github.com/lixenwraith/fishyman/render"
	"github.com/lixenwraith/fishyman/rig"
	"github.com/lixenwraith/fishyman/school"
	"github.com/lixenwraith/fishyman/vmath"
)

// partAppearance maps each rig part to its mesh and material
var partAppearance = [rig.PartCount]struct {
	mesh     render.MeshID
	material render.MaterialID
}{
	rig.PartHead:      {render.MeshSphere, render.MaterialHead},
	rig.PartTorso:     {render.MeshCube, render.MaterialBody},
	rig.PartLeftArm:   {render.MeshCube, render.MaterialBody},
	rig.PartRightArm:  {render.MeshCube, render.MaterialBody},
	rig.PartLeftLeg:   {render.MeshCube, render.MaterialBody},
	rig.PartRightLeg:  {render.MeshCube, render.MaterialBody},
	rig.PartRodHandle: {render.MeshSphere, render.MaterialRod},
	rig.PartRodShaft:  {render.MeshSphere, render.MaterialRod},
	rig.PartLure:      {render.MeshSphere, render.MaterialLure},
}

// Render emits one frame of draw calls: backdrop, figure and rod, lure, fish
func (s *Scene) Render(sink render.Sink) {
	s.renderBackdrop(sink)

	pose := s.Pose()
	for part := rig.Part(0); part < rig.PartCount; part++ {
		if part == rig.PartLure && s.projectile.Active {
			continue
		}
		a := partAppearance[part]
		sink.Draw(a.mesh, pose.Transform(part), a.material)
	}

	if s.projectile.Active {
		lure := s.projectile.Position
		sink.Draw(render.MeshSphere, vmath.TRS(lure, 0, vmath.AxisZ, vmath.Uniform(parameter.LureFlightScale)), render.MaterialLure)
		sink.Draw(render.MeshCube, vmath.Segment(pose.Origin(rig.PartLure), lure, parameter.LineThickness), render.MaterialLine)
	}

	for i := range s.population.Actors() {
		a := &s.population.Actors()[i]
		sink.Draw(render.MeshFish, fishTransform(a), s.fishMaterial(a))
	}
}

func (s *Scene) renderBackdrop(sink render.Sink) {
	sink.Draw(render.MeshSphere, mgl64.Scale3D(parameter.SkyScale, parameter.SkyScale, parameter.SkyScale), render.MaterialSky)
	sink.Draw(render.MeshSphere, s.ocean, render.MaterialOcean)
	sink.Draw(render.MeshSphere, vmath.TRS(parameter.SandOffset, 0, vmath.AxisZ, parameter.SandScale), render.MaterialSand)
	sink.Draw(render.MeshPalm,
		vmath.TRS(parameter.TreeOffset, parameter.TreeTilt, vmath.AxisX, vmath.Uniform(parameter.TreeScale)),
		render.MaterialTree)
}

// fishTransform swims free fish along their facing, caught fish hang nose-up on the rack
func fishTransform(a *school.Actor) mgl64.Mat4 {
	scale := vmath.Uniform(parameter.FishScale)
	if a.Caught {
		return vmath.Chain(
			vmath.TRS(school.TrophyPosition(a.Trophy), -mgl64.DegToRad(90), vmath.AxisY, vmath.Uniform(1)),
			mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()),
		)
	}
	return vmath.TRS(a.World(), a.Facing, vmath.AxisZ, scale)
}

// fishMaterial registers actor materials on first use
func (s *Scene) fishMaterial(a *school.Actor) render.MaterialID {
	for len(s.fishMaterials) <= a.ID {
		s.fishMaterials = append(s.fishMaterials, 0)
	}
	if id := s.fishMaterials[a.ID]; id != 0 {
		return id
	}
	id := s.materials.Add(render.FishMaterial(fmt.Sprintf("fish-%d", a.ID), a.Color))
	s.fishMaterials[a.ID] = id
	return id
}

// Rasterize clears r's canvas and draws the frame from the scene camera
func (s *Scene) Rasterize(r *render.Rasterizer) {
	aspect := float64(r.Canvas.Width) / float64(max(r.Canvas.Height, 1))
	r.Begin()
	r.SetCamera(s.camera.View(), s.camera.Projection(aspect))
	s.Render(r)
}
