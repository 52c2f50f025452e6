package frustum

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box é uma caixa alinhada aos eixos (AABB).
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox retorna uma caixa invertida (+Inf/-Inf), pronta para Extend.
func EmptyBox() Box {
	inf := float32(math.Inf(1))
	return Box{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// BoxFromPoints calcula a AABB que envolve todos os pontos.
// Cada eixo é reduzido de forma independente.
func BoxFromPoints(points ...mgl32.Vec3) Box {
	b := EmptyBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend aumenta a caixa para conter p.
func (b *Box) Extend(p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// IsValid indica se Min <= Max em todos os eixos.
func (b Box) IsValid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center retorna o ponto central da caixa.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Dimensions retorna largura, altura e profundidade.
func (b Box) Dimensions() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Corners retorna os 8 cantos da caixa.
func (b Box) Corners() [8]mgl32.Vec3 {
	return [8]mgl32.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
	}
}
