package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPerspectiveDefaults(t *testing.T) {
	p := NewPerspective(67, 800, 400)

	if p.Near != 1 || p.Far != 100 {
		t.Errorf("near/far = %v/%v, want 1/100", p.Near, p.Far)
	}
	if p.Aspect() != 2 {
		t.Errorf("Aspect = %v, want 2", p.Aspect())
	}
	if !p.Frustum.PointInFrustum(mgl32.Vec3{0, 0, -50}) {
		t.Errorf("ponto à frente deveria estar no frustum")
	}
	if p.Frustum.PointInFrustum(mgl32.Vec3{0, 0, 50}) {
		t.Errorf("ponto atrás não deveria estar no frustum")
	}
}

func TestLookAtKeepsUpOrthogonal(t *testing.T) {
	tests := []struct {
		name   string
		pos    mgl32.Vec3
		target mgl32.Vec3
	}{
		{"diagonal", mgl32.Vec3{0, 10, 10}, mgl32.Vec3{0, 0, 0}},
		{"reto para baixo", mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 0, 0}},
		{"horizontal", mgl32.Vec3{5, 0, 0}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		p := NewPerspective(45, 1, 1)
		p.Position = tt.pos
		p.LookAt(tt.target)
		p.Update()

		want := tt.target.Sub(tt.pos).Normalize()
		if !p.Direction.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("%s: Direction = %v, want %v", tt.name, p.Direction, want)
		}
		if d := p.Direction.Dot(p.Up); d > 1e-5 || d < -1e-5 {
			t.Errorf("%s: Up não é ortogonal (dot=%v)", tt.name, d)
		}
		if !p.Frustum.PointInFrustum(tt.pos.Add(want.Mul(50))) {
			t.Errorf("%s: ponto no eixo de visão deveria estar no frustum", tt.name)
		}
	}
}

func TestUpdateCombined(t *testing.T) {
	p := NewPerspective(60, 4, 3)
	p.Position = mgl32.Vec3{3, 4, 5}
	p.Near = 0.5
	p.Far = 25
	p.LookAt(mgl32.Vec3{0, 0, 0})
	p.Update()

	if !p.Combined.ApproxEqualThreshold(p.Projection.Mul4(p.View), 1e-5) {
		t.Errorf("Combined != Projection*View")
	}
	if !p.Combined.Mul4(p.InvCombined).ApproxEqualThreshold(mgl32.Ident4(), 1e-3) {
		t.Errorf("InvCombined não é a inversa")
	}

	// O centro do near plane fica a Near unidades da posição.
	nearCenter := p.Frustum.Points[0].Add(p.Frustum.Points[2]).Mul(0.5)
	if dist := nearCenter.Sub(p.Position).Len(); dist < 0.49 || dist > 0.51 {
		t.Errorf("distância do near = %v, want 0.5", dist)
	}
}
