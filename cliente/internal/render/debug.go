package render

import (
	"DecalProjector/cliente/internal/decal"
	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Índices dos cantos do frustum: 0-3 near, 4-7 far.
var frustumEdges = [12][2]int{
	// near
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	// far
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	// ligações near-far
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

var frustumFaces = [6][4]int{
	{0, 1, 2, 3}, // near
	{4, 5, 6, 7}, // far
	{0, 4, 5, 1},
	{1, 5, 6, 2},
	{2, 6, 7, 3},
	{3, 7, 4, 0},
}

// quadAlpha é a opacidade das faces no modo preenchido (0.35).
const quadAlpha uint8 = 89

// DebugRenderer desenha o frustum do projetor de um decal.
// Deve ser chamado dentro de rl.BeginMode3D.
type DebugRenderer struct {
	FrustumColor         rl.Color
	FrustumLineWidth     float32
	RenderFrustumAsLines bool
	DepthTestEnabled     bool
}

// NewDebugRenderer cria o renderer com frustum dourado preenchido.
func NewDebugRenderer() *DebugRenderer {
	return &DebugRenderer{
		FrustumColor:     rl.Gold,
		FrustumLineWidth: 2,
		DepthTestEnabled: true,
	}
}

// Render desenha o frustum de d.Camera.
func (r *DebugRenderer) Render(d *decal.Decal) {
	if d == nil || d.Camera == nil {
		return
	}
	corners := d.Camera.Frustum.Points

	rl.DrawRenderBatchActive()
	if r.DepthTestEnabled {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}

	if r.RenderFrustumAsLines {
		r.drawLines(corners, r.FrustumColor)
	} else {
		r.drawLines(corners, rl.Black)
		r.drawQuads(corners)
	}

	rl.DrawRenderBatchActive()
	rl.EnableDepthTest()
}

func (r *DebugRenderer) drawLines(corners [8]mgl32.Vec3, color rl.Color) {
	rl.DrawRenderBatchActive()
	rl.SetLineWidth(r.FrustumLineWidth)
	for _, e := range frustumEdges {
		rl.DrawLine3D(util.ToVector3(corners[e[0]]), util.ToVector3(corners[e[1]]), color)
	}
	rl.DrawRenderBatchActive()
	rl.SetLineWidth(1)
}

func (r *DebugRenderer) drawQuads(corners [8]mgl32.Vec3) {
	color := r.FrustumColor
	color.A = quadAlpha

	// As faces são vistas por dentro e por fora, então o culling sai.
	rl.DisableBackfaceCulling()
	rl.BeginBlendMode(rl.BlendAlpha)
	for _, q := range frustumQuadTriangles() {
		rl.DrawTriangle3D(
			util.ToVector3(corners[q[0]]),
			util.ToVector3(corners[q[1]]),
			util.ToVector3(corners[q[2]]),
			color,
		)
	}
	rl.EndBlendMode()
	rl.EnableBackfaceCulling()
}

// frustumQuadTriangles divide cada face em dois triângulos (p1,p2,p3) e (p3,p4,p1).
func frustumQuadTriangles() [12][3]int {
	var tris [12][3]int
	for i, f := range frustumFaces {
		tris[i*2] = [3]int{f[0], f[1], f[2]}
		tris[i*2+1] = [3]int{f[2], f[3], f[0]}
	}
	return tris
}
