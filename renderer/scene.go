package renderer

import (
	_ "embed"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wator/camera"
	"github.com/pthm-cable/wator/components"
	"github.com/pthm-cable/wator/config"
	"github.com/pthm-cable/wator/renderer/instances"
)

//go:embed shaders/instanced.vs
var instancedVS string

//go:embed shaders/instanced.fs
var instancedFS string

// boundsColor matches the red wireframe helper box.
var boundsColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// Scene draws the lattice: one instanced cube batch per species and the
// wireframe bounds.
type Scene struct {
	mesh     rl.Mesh
	material rl.Material

	fishColor  color.RGBA
	sharkColor color.RGBA
	cubeSize   float32
	showBounds bool

	// Cached per-species transforms, rebuilt when the buffer changes
	transforms [2][]rl.Matrix
	version    uint64
	built      bool

	initialized bool
}

// NewScene creates a scene from render settings.
func NewScene(cfg config.RenderConfig) (*Scene, error) {
	fish, shark, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("scene colors: %w", err)
	}
	size := float32(cfg.CubeSize)
	if size <= 0 || size > 1 {
		size = 0.9
	}
	return &Scene{
		fishColor:  fish,
		sharkColor: shark,
		cubeSize:   size,
		showBounds: cfg.ShowBounds,
	}, nil
}

// Init loads the cube mesh and instancing shader (must be called after the
// raylib window is created).
func (s *Scene) Init() {
	if s.initialized {
		return
	}

	s.mesh = rl.GenMeshCube(s.cubeSize, s.cubeSize, s.cubeSize)

	shader := rl.LoadShaderFromMemory(instancedVS, instancedFS)
	shader.UpdateLocation(rl.ShaderLocMatrixMvp, rl.GetShaderLocation(shader, "mvp"))
	shader.UpdateLocation(rl.ShaderLocMatrixModel, rl.GetShaderLocationAttrib(shader, "instanceTransform"))

	s.material = rl.LoadMaterialDefault()
	s.material.Shader = shader

	s.initialized = true
}

// ShowBounds reports whether the wireframe bounds are drawn.
func (s *Scene) ShowBounds() bool {
	return s.showBounds
}

// CubeSize returns the edge length of a creature cube.
func (s *Scene) CubeSize() float32 {
	return s.cubeSize
}

// SetShowBounds toggles the wireframe bounds.
func (s *Scene) SetShowBounds(show bool) {
	s.showBounds = show
}

// Camera3D converts the orbit camera into a raylib camera.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	ex, ey, ez := cam.Eye()
	return rl.Camera3D{
		Position:   rl.NewVector3(ex, ey, ez),
		Target:     rl.NewVector3(cam.TargetX, cam.TargetY, cam.TargetZ),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       75,
		Projection: rl.CameraPerspective,
	}
}

// Draw renders all live instances and the lattice bounds.
func (s *Scene) Draw(cam *camera.Camera, buf *instances.Buffer, dims components.Dims) {
	if !s.initialized {
		s.Init()
	}

	if !s.built || buf.Version() != s.version {
		s.rebuild(buf)
	}

	rl.BeginMode3D(Camera3D(cam))

	s.drawBatch(s.transforms[components.SpeciesFish], s.fishColor)
	s.drawBatch(s.transforms[components.SpeciesShark], s.sharkColor)

	if s.showBounds {
		w, h, l := float32(dims.X), float32(dims.Y), float32(dims.Z)
		rl.DrawCubeWires(rl.NewVector3(w/2, h/2, l/2), w, h, l, boundsColor)
	}

	rl.EndMode3D()
}

func (s *Scene) drawBatch(transforms []rl.Matrix, col color.RGBA) {
	if len(transforms) == 0 {
		return
	}
	s.material.GetMap(rl.MapDiffuse).Color = col
	rl.DrawMeshInstanced(s.mesh, s.material, transforms, len(transforms))
}

// rebuild converts slot positions into cube transforms. Cell (x, y, z)
// occupies the unit cube starting at that corner.
func (s *Scene) rebuild(buf *instances.Buffer) {
	for _, sp := range []components.Species{components.SpeciesFish, components.SpeciesShark} {
		positions := buf.Positions(sp)
		t := s.transforms[sp][:0]
		for _, p := range positions {
			t = append(t, rl.MatrixTranslate(float32(p.X)+0.5, float32(p.Y)+0.5, float32(p.Z)+0.5))
		}
		s.transforms[sp] = t
	}
	s.version = buf.Version()
	s.built = true
}

// Unload frees GPU resources.
func (s *Scene) Unload() {
	if s.initialized {
		rl.UnloadMesh(&s.mesh)
		// Unloads the instancing shader along with the material
		rl.UnloadMaterial(s.material)
		s.initialized = false
	}
}
