package frustum

import "github.com/go-gl/mathgl/mgl32"

// Side indica de que lado de um plano um ponto está.
type Side int

const (
	OnPlane Side = iota
	Back
	Front
)

// Plane é um plano na forma Normal·p + D = 0.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// PlaneFromPoints monta o plano que passa pelos três pontos.
// A normal segue a regra da mão direita (b-a) x (c-a).
func PlaneFromPoints(a, b, c mgl32.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return Plane{Normal: n, D: -n.Dot(a)}
}

// Distance retorna a distância com sinal de p até o plano.
func (pl Plane) Distance(p mgl32.Vec3) float32 {
	return pl.Normal.Dot(p) + pl.D
}

// TestPoint classifica p em relação ao plano.
func (pl Plane) TestPoint(p mgl32.Vec3) Side {
	d := pl.Distance(p)
	switch {
	case d == 0:
		return OnPlane
	case d < 0:
		return Back
	default:
		return Front
	}
}

func (pl Plane) flipped() Plane {
	return Plane{Normal: pl.Normal.Mul(-1), D: -pl.D}
}

// Índices dos planos do frustum.
const (
	PlaneNear = iota
	PlaneFar
	PlaneLeft
	PlaneRight
	PlaneTop
	PlaneBottom
)

// Cantos do cubo NDC. 0-3 formam o plano near, 4-7 o far, ambos em sentido
// anti-horário começando em (-1,-1).
var clipSpaceCorners = [8]mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// Frustum guarda os 8 cantos em espaço de mundo e os 6 planos com normais
// apontando para dentro.
type Frustum struct {
	Points [8]mgl32.Vec3
	Planes [6]Plane
}

// FromMatrix cria um frustum a partir da inversa da matriz combinada (proj*view).
func FromMatrix(invCombined mgl32.Mat4) Frustum {
	var f Frustum
	f.Update(invCombined)
	return f
}

// Update recalcula cantos e planos a partir da inversa da matriz combinada.
func (f *Frustum) Update(invCombined mgl32.Mat4) {
	for i, c := range clipSpaceCorners {
		v := invCombined.Mul4x1(c.Vec4(1))
		w := v.W()
		if w == 0 {
			w = 1
		}
		f.Points[i] = v.Vec3().Mul(1 / w)
	}

	p := &f.Points
	f.Planes[PlaneNear] = PlaneFromPoints(p[0], p[1], p[2])
	f.Planes[PlaneFar] = PlaneFromPoints(p[4], p[7], p[6])
	f.Planes[PlaneLeft] = PlaneFromPoints(p[0], p[3], p[7])
	f.Planes[PlaneRight] = PlaneFromPoints(p[1], p[5], p[6])
	f.Planes[PlaneTop] = PlaneFromPoints(p[3], p[2], p[6])
	f.Planes[PlaneBottom] = PlaneFromPoints(p[0], p[4], p[5])

	// A inversa pode espelhar o espaço (a projeção de GL inverte o Z), então a
	// orientação é decidida pelo centróide, que está sempre dentro.
	centroid := f.Centroid()
	for i := range f.Planes {
		if f.Planes[i].Distance(centroid) < 0 {
			f.Planes[i] = f.Planes[i].flipped()
		}
	}
}

// Centroid retorna a média dos 8 cantos.
func (f *Frustum) Centroid() mgl32.Vec3 {
	var sum mgl32.Vec3
	for _, p := range f.Points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / 8.0)
}

// Bounds retorna a AABB dos 8 cantos.
func (f *Frustum) Bounds() Box {
	return BoxFromPoints(f.Points[:]...)
}

// PointInFrustum indica se p está dentro ou sobre a borda do frustum.
func (f *Frustum) PointInFrustum(p mgl32.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].TestPoint(p) == Back {
			return false
		}
	}
	return true
}

// BoundsInFrustum indica se a caixa pode intersectar o frustum. Só rejeita quando
// todos os cantos estão atrás de um mesmo plano, então pode dar falso positivo
// perto das arestas mas nunca falso negativo.
func (f *Frustum) BoundsInFrustum(b Box) bool {
	corners := b.Corners()
	for i := range f.Planes {
		out := 0
		for _, c := range corners {
			if f.Planes[i].TestPoint(c) == Back {
				out++
			}
		}
		if out == len(corners) {
			return false
		}
	}
	return true
}
