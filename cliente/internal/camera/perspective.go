package camera

import (
	"DecalProjector/shared/frustum"

	"github.com/go-gl/mathgl/mgl32"
)

// Distâncias de corte padrão da rlgl (RL_CULL_DISTANCE_NEAR/FAR). A câmera principal
// usa os mesmos valores que rl.BeginMode3D para que o passe de decal produza a mesma
// profundidade da cena.
const (
	RaylibNear float32 = 0.01
	RaylibFar  float32 = 1000.0
)

// Perspective é uma câmera de perspectiva com matrizes e frustum calculados em
// Update. Serve tanto de projetor do decal quanto de câmera de renderização.
type Perspective struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3

	FieldOfView    float32 // Vertical, em graus
	Near           float32
	Far            float32
	ViewportWidth  float32
	ViewportHeight float32

	Projection  mgl32.Mat4
	View        mgl32.Mat4
	Combined    mgl32.Mat4 // Projection * View
	InvCombined mgl32.Mat4

	Frustum frustum.Frustum
}

// NewPerspective cria uma câmera na origem olhando para -Z.
func NewPerspective(fov, viewportWidth, viewportHeight float32) *Perspective {
	p := &Perspective{
		Position:       mgl32.Vec3{0, 0, 0},
		Direction:      mgl32.Vec3{0, 0, -1},
		Up:             mgl32.Vec3{0, 1, 0},
		FieldOfView:    fov,
		Near:           1,
		Far:            100,
		ViewportWidth:  viewportWidth,
		ViewportHeight: viewportHeight,
	}
	p.Update()
	return p
}

// Aspect retorna largura/altura do viewport.
func (p *Perspective) Aspect() float32 {
	if p.ViewportHeight == 0 {
		return 1
	}
	return p.ViewportWidth / p.ViewportHeight
}

// LookAt aponta a câmera para target e reortogonaliza o vetor Up.
func (p *Perspective) LookAt(target mgl32.Vec3) {
	dir := target.Sub(p.Position)
	if dir.Len() == 0 {
		return
	}
	p.Direction = dir.Normalize()
	p.normalizeUp()
}

func (p *Perspective) normalizeUp() {
	right := p.Direction.Cross(p.Up)
	if right.Len() < 1e-6 {
		// Direção paralela ao Up: escolhe qualquer eixo perpendicular.
		right = p.Direction.Cross(mgl32.Vec3{0, 0, 1})
		if right.Len() < 1e-6 {
			right = p.Direction.Cross(mgl32.Vec3{1, 0, 0})
		}
	}
	p.Up = right.Cross(p.Direction).Normalize()
}

// Update recalcula projeção, view, matriz combinada e frustum.
func (p *Perspective) Update() {
	p.Projection = mgl32.Perspective(mgl32.DegToRad(p.FieldOfView), p.Aspect(), p.Near, p.Far)
	p.View = mgl32.LookAtV(p.Position, p.Position.Add(p.Direction), p.Up)
	p.Combined = p.Projection.Mul4(p.View)
	p.InvCombined = p.Combined.Inv()
	p.Frustum.Update(p.InvCombined)
}
