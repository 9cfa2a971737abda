package main

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/60-de-QI/vulqian"
	"github.com/60-de-QI/vulqian/components"
	"github.com/60-de-QI/vulqian/config"
	"github.com/60-de-QI/vulqian/systems"
)

var (
	smoothVase  = &components.Model{Name: "models/smooth_vase.obj", VertexCount: 11808}
	flatVase    = &components.Model{Name: "models/flat_vase.obj", VertexCount: 11808}
	coloredCube = &components.Model{Name: "models/colored_cube.obj", VertexCount: 36}
)

type scene struct {
	c       *vulqian.Coordinator
	log     *zap.Logger
	physics *systems.Physics
	lights  *systems.PointLights
	render  *systems.Render
	camera  mgl32.Vec3
	viewer  vulqian.Entity
}

type frameStats struct {
	frames      int
	draws       int
	transparent int
	lights      int
	billboards  int
}

func newScene(cfg config.Config, logger *zap.Logger) *scene {
	c := vulqian.NewCoordinator(
		vulqian.WithCapacity(cfg.MaxEntities),
		vulqian.WithLogger(logger),
	)
	components.Register(c)
	s := &scene{
		c:       c,
		log:     logger,
		physics: systems.RegisterPhysics(c),
		lights:  systems.RegisterPointLights(c),
		render:  systems.RegisterRender(c),
		camera:  mgl32.Vec3(cfg.Scene.Camera),
	}
	vulqian.AddResource(c.Resources(), systems.NewGlobalUbo())

	s.viewer = c.CreateEntity()
	viewer := components.NewTransform()
	viewer.Translation = s.camera
	vulqian.AddComponent(c, s.viewer, viewer)

	s.addVases()
	s.addCubes(cfg.Scene.Cubes, cfg.Scene.Seed)
	s.addLights(cfg.Scene.Lights)
	return s
}

func (s *scene) addVases() {
	smooth := components.NewTransform()
	smooth.Scale = mgl32.Vec3{3, 1.5, 3}
	smooth.Translation = mgl32.Vec3{-.5, .5, 2.5}
	e := s.c.CreateEntity()
	vulqian.AddComponent(s.c, e, smooth)
	vulqian.AddComponent(s.c, e, components.NewMesh(smoothVase))

	flat := components.NewTransform()
	flat.Scale = mgl32.Vec3{3, 1.5, 3}
	flat.Translation = mgl32.Vec3{.5, .5, 2.5}
	e = s.c.CreateEntity()
	vulqian.AddComponent(s.c, e, flat)
	vulqian.AddComponent(s.c, e, components.NewMesh(flatVase))
	vulqian.AddComponent(s.c, e, components.NewTransparency(0.5))
}

func (s *scene) addCubes(n int, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	between := func(lo, hi float32) float32 { return lo + rng.Float32()*(hi-lo) }
	transforms := vulqian.NewBuilder[components.Transform](s.c)
	for range n {
		t := components.NewTransform()
		scale := between(0.5, 3)
		t.Scale = mgl32.Vec3{scale, scale, scale}
		t.Rotation = mgl32.Vec3{between(0, 3), between(0, 3), between(0, 3)}
		t.Translation = mgl32.Vec3{between(-100, 100), between(-100, 100), between(-100, 100)}
		e := transforms.NewEntity(t)
		vulqian.AddComponent(s.c, e, components.NewMesh(coloredCube))
		vulqian.AddComponent(s.c, e, components.Motion{Spin: mgl32.Vec3{0.03, 0.06, 0}})
	}
}

func (s *scene) addLights(lights []config.Light) {
	for _, l := range lights {
		t := components.NewTransform()
		t.Translation = mgl32.Vec3(l.Position)
		t.Scale[0] = l.Radius
		e := s.c.CreateEntity()
		vulqian.AddComponent(s.c, e, t)
		vulqian.AddComponent(s.c, e, components.PointLight{
			Intensity: l.Intensity,
			Color:     mgl32.Vec3(l.Color),
		})
	}
}

func (s *scene) run(frames int, dt float32) frameStats {
	ubo, _ := vulqian.GetResource[systems.GlobalUbo](s.c.Resources())
	var stats frameStats
	for frame := range frames {
		s.physics.Update(dt)
		s.lights.Update(dt, ubo)
		draws := s.render.Collect(s.c, s.camera)
		billboards := s.lights.Collect()

		stats.frames++
		stats.draws = len(draws)
		stats.lights = ubo.NumLights
		stats.billboards = len(billboards)
		stats.transparent = 0
		for _, d := range draws {
			if d.Transparent {
				stats.transparent++
			}
		}
		s.log.Debug("frame",
			zap.Int("index", frame),
			zap.Int("draws", stats.draws),
			zap.Int("lights", stats.lights),
			zap.Int("billboards", stats.billboards))
	}
	return stats
}
