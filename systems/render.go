package systems

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/60-de-QI/vulqian"
	"github.com/60-de-QI/vulqian/components"
)

// DrawCommand is everything the rendering layer needs to draw one entity.
type DrawCommand struct {
	Entity       vulqian.Entity
	Model        *components.Model
	Texture      *components.Texture // nil means default white
	ModelMatrix  mgl32.Mat4
	NormalMatrix mgl32.Mat3
	Color        mgl32.Vec4
	Transparent  bool
}

// Render turns every entity with a Transform and a Mesh into a draw
// command.
type Render struct {
	vulqian.System

	draws       []DrawCommand
	transparent []sortedDraw
	unsorted    []DrawCommand
}

type sortedDraw struct {
	distance float32
	draw     DrawCommand
}

// RegisterRender registers Render with c and sets its requirement.
// Transform and Mesh must already be registered.
func RegisterRender(c *vulqian.Coordinator) *Render {
	r := vulqian.RegisterSystem[Render](c)
	vulqian.SetSystemSignature[Render](c, vulqian.NewSignature(
		vulqian.TypeOf[components.Transform](c),
		vulqian.TypeOf[components.Mesh](c),
	))
	return r
}

// Collect returns opaque draws first, then transparent draws from the
// farthest to the nearest to camera. Transparent draws that do not ask for
// depth sorting come last. The slice is reused by the next call.
func (r *Render) Collect(c *vulqian.Coordinator, camera mgl32.Vec3) []DrawCommand {
	r.draws = r.draws[:0]
	r.transparent = r.transparent[:0]
	r.unsorted = r.unsorted[:0]
	for _, e := range r.Entities() {
		t := vulqian.GetComponent[components.Transform](c, e)
		mesh := vulqian.GetComponent[components.Mesh](c, e)
		d := DrawCommand{
			Entity:       e,
			Model:        mesh.Model,
			Texture:      mesh.DiffuseTexture,
			ModelMatrix:  t.Mat4(),
			NormalMatrix: t.NormalMatrix(),
			Color:        mgl32.Vec4{1, 1, 1, 1},
		}
		if !vulqian.HasComponent[components.Transparency](c, e) {
			r.draws = append(r.draws, d)
			continue
		}
		tr := vulqian.GetComponent[components.Transparency](c, e)
		d.Color = tr.Color.Vec4(tr.Alpha)
		d.Transparent = true
		if !tr.RequiresDepthSorting {
			r.unsorted = append(r.unsorted, d)
			continue
		}
		offset := camera.Sub(t.Translation)
		r.transparent = append(r.transparent, sortedDraw{distance: offset.Dot(offset), draw: d})
	}
	slices.SortStableFunc(r.transparent, func(a, b sortedDraw) int {
		if n := cmp.Compare(b.distance, a.distance); n != 0 {
			return n
		}
		return cmp.Compare(a.draw.Entity, b.draw.Entity)
	})
	for _, s := range r.transparent {
		r.draws = append(r.draws, s.draw)
	}
	r.draws = append(r.draws, r.unsorted...)
	return r.draws
}
