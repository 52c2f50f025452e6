package render

import (
	"unsafe"

	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneObject é um modelo posicionado na cena de demonstração.
type SceneObject struct {
	Name      string
	Model     rl.Model
	Transform mgl32.Mat4
	Tint      rl.Color
}

// Scene guarda os objetos da cena. Implementa RenderableProvider.
type Scene struct {
	Objects []SceneObject
}

// NewDemoScene monta chão, caixas e uma esfera. Requer a janela inicializada.
func NewDemoScene() *Scene {
	s := &Scene{}

	s.Add("ground", rl.GenMeshPlane(40, 40, 20, 20), mgl32.Ident4(), rl.NewColor(120, 120, 130, 255))
	s.Add("crate_a", rl.GenMeshCube(3, 3, 3), mgl32.Translate3D(-4, 1.5, -2), rl.NewColor(160, 110, 70, 255))
	s.Add("crate_b", rl.GenMeshCube(2, 4, 2), mgl32.Translate3D(3, 2, 2).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(30))), rl.NewColor(90, 130, 160, 255))
	s.Add("ball", rl.GenMeshSphere(1.5, 24, 24), mgl32.Translate3D(0, 1.5, 4), rl.NewColor(170, 170, 90, 255))
	s.Add("wall", rl.GenMeshCube(12, 6, 0.5), mgl32.Translate3D(0, 3, -8), rl.NewColor(140, 140, 140, 255))

	return s
}

// Add cria um modelo a partir da malha e o adiciona à cena.
func (s *Scene) Add(name string, mesh rl.Mesh, transform mgl32.Mat4, tint rl.Color) {
	s.Objects = append(s.Objects, SceneObject{
		Name:      name,
		Model:     rl.LoadModelFromMesh(mesh),
		Transform: transform,
		Tint:      tint,
	})
}

// Renderables acrescenta uma entrada por malha de cada objeto.
func (s *Scene) Renderables(out []Renderable) []Renderable {
	for _, obj := range s.Objects {
		if obj.Model.MeshCount == 0 || obj.Model.Meshes == nil {
			continue
		}
		meshes := unsafe.Slice(obj.Model.Meshes, obj.Model.MeshCount)
		for _, m := range meshes {
			out = append(out, Renderable{Mesh: m, WorldTransform: obj.Transform})
		}
	}
	return out
}

// Draw desenha a cena com o material padrão de cada modelo.
func (s *Scene) Draw() {
	for i := range s.Objects {
		obj := &s.Objects[i]
		obj.Model.Transform = util.ToMatrix(obj.Transform)
		rl.DrawModel(obj.Model, rl.Vector3{}, 1, obj.Tint)
	}
}

// Unload libera os modelos da GPU.
func (s *Scene) Unload() {
	for _, obj := range s.Objects {
		rl.UnloadModel(obj.Model)
	}
	s.Objects = nil
}
