package frustum

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-3

func vecClose(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

// perspectiveFrustum monta um frustum na origem olhando para -Z.
func perspectiveFrustum(fov, near, far float32) Frustum {
	proj := mgl32.Perspective(mgl32.DegToRad(fov), 1, near, far)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	return FromMatrix(proj.Mul4(view).Inv())
}

func TestBoxFromPoints(t *testing.T) {
	points := []mgl32.Vec3{
		{3, -1, 2},
		{-4, 5, 0},
		{1, 1, -7},
		{0, 0, 0},
		{2, -6, 9},
		{-1, 2, 3},
		{8, 0, -2},
		{0.5, 4, 1},
	}

	b := BoxFromPoints(points...)

	if want := (mgl32.Vec3{-4, -6, -7}); b.Min != want {
		t.Errorf("Min = %v, want %v", b.Min, want)
	}
	if want := (mgl32.Vec3{8, 5, 9}); b.Max != want {
		t.Errorf("Max = %v, want %v", b.Max, want)
	}
	if !b.IsValid() {
		t.Errorf("box deveria ser válida")
	}
}

func TestEmptyBox(t *testing.T) {
	b := EmptyBox()
	if b.IsValid() {
		t.Fatalf("caixa vazia não deveria ser válida")
	}
	if !math.IsInf(float64(b.Min[0]), 1) || !math.IsInf(float64(b.Max[2]), -1) {
		t.Errorf("caixa vazia deveria começar em +Inf/-Inf, got %v", b)
	}

	b.Extend(mgl32.Vec3{1, 2, 3})
	if b.Min != b.Max || b.Min != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("caixa com um ponto deveria colapsar nele, got %v", b)
	}
}

func TestBoxCenterAndDimensions(t *testing.T) {
	b := Box{Min: mgl32.Vec3{-1, 0, 2}, Max: mgl32.Vec3{3, 4, 6}}
	if got := b.Center(); got != (mgl32.Vec3{1, 2, 4}) {
		t.Errorf("Center = %v", got)
	}
	if got := b.Dimensions(); got != (mgl32.Vec3{4, 4, 4}) {
		t.Errorf("Dimensions = %v", got)
	}
	corners := b.Corners()
	if got := BoxFromPoints(corners[:]...); got != b {
		t.Errorf("cantos não reconstroem a caixa: %v", got)
	}
}

func TestFrustumIdentity(t *testing.T) {
	f := FromMatrix(mgl32.Ident4())

	for i, c := range clipSpaceCorners {
		if !vecClose(f.Points[i], c) {
			t.Errorf("Points[%d] = %v, want %v", i, f.Points[i], c)
		}
	}

	tests := []struct {
		plane  int
		normal mgl32.Vec3
	}{
		{PlaneNear, mgl32.Vec3{0, 0, 1}},
		{PlaneFar, mgl32.Vec3{0, 0, -1}},
		{PlaneLeft, mgl32.Vec3{1, 0, 0}},
		{PlaneRight, mgl32.Vec3{-1, 0, 0}},
		{PlaneTop, mgl32.Vec3{0, -1, 0}},
		{PlaneBottom, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		pl := f.Planes[tt.plane]
		if !vecClose(pl.Normal, tt.normal) {
			t.Errorf("plano %d normal = %v, want %v", tt.plane, pl.Normal, tt.normal)
		}
		if math.Abs(float64(pl.D-1)) > eps {
			t.Errorf("plano %d D = %v, want 1", tt.plane, pl.D)
		}
	}
}

func TestFrustumPerspectiveCorners(t *testing.T) {
	f := perspectiveFrustum(90, 1, 10)

	// Com fov de 90 graus e aspecto 1 a meia largura é igual à distância.
	if !vecClose(f.Points[0], mgl32.Vec3{-1, -1, -1}) {
		t.Errorf("near bottom-left = %v", f.Points[0])
	}
	if !vecClose(f.Points[6], mgl32.Vec3{10, 10, -10}) {
		t.Errorf("far top-right = %v", f.Points[6])
	}

	b := f.Bounds()
	if !vecClose(b.Min, mgl32.Vec3{-10, -10, -10}) || !vecClose(b.Max, mgl32.Vec3{10, 10, -1}) {
		t.Errorf("Bounds = %v", b)
	}
}

func TestPointInFrustum(t *testing.T) {
	f := perspectiveFrustum(60, 1, 100)

	tests := []struct {
		name  string
		point mgl32.Vec3
		want  bool
	}{
		{"centro", mgl32.Vec3{0, 0, -50}, true},
		{"centróide", f.Centroid(), true},
		{"atrás da câmera", mgl32.Vec3{0, 0, 5}, false},
		{"antes do near", mgl32.Vec3{0, 0, -0.5}, false},
		{"depois do far", mgl32.Vec3{0, 0, -150}, false},
		{"fora à direita", mgl32.Vec3{40, 0, -50}, false},
		{"fora acima", mgl32.Vec3{0, 40, -50}, false},
	}
	for _, tt := range tests {
		if got := f.PointInFrustum(tt.point); got != tt.want {
			t.Errorf("%s: PointInFrustum(%v) = %v, want %v", tt.name, tt.point, got, tt.want)
		}
	}
}

func TestBoundsInFrustum(t *testing.T) {
	f := perspectiveFrustum(60, 1, 100)

	box := func(center mgl32.Vec3, half float32) Box {
		h := mgl32.Vec3{half, half, half}
		return Box{Min: center.Sub(h), Max: center.Add(h)}
	}

	tests := []struct {
		name string
		box  Box
		want bool
	}{
		{"dentro", box(mgl32.Vec3{0, 0, -50}, 1), true},
		{"contém o frustum", box(mgl32.Vec3{0, 0, -50}, 500), true},
		{"cruzando a borda direita", box(mgl32.Vec3{29, 0, -50}, 2), true},
		{"atrás", box(mgl32.Vec3{0, 0, 10}, 1), false},
		{"além do far", box(mgl32.Vec3{0, 0, -200}, 10), false},
		{"longe à direita", box(mgl32.Vec3{500, 0, -50}, 5), false},
		{"longe abaixo", box(mgl32.Vec3{0, -500, -50}, 5), false},
	}
	for _, tt := range tests {
		if got := f.BoundsInFrustum(tt.box); got != tt.want {
			t.Errorf("%s: BoundsInFrustum = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFrustumVsFrustumBounds(t *testing.T) {
	main := perspectiveFrustum(60, 1, 100)

	// Projetor à frente da câmera principal, apontando para baixo.
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 1, 20)
	view := mgl32.LookAtV(mgl32.Vec3{0, 10, -30}, mgl32.Vec3{0, 0, -30}, mgl32.Vec3{0, 0, -1})
	inside := FromMatrix(proj.Mul4(view).Inv())
	if !main.BoundsInFrustum(inside.Bounds()) {
		t.Errorf("projetor à frente deveria ser visível")
	}

	// Mesmo projetor transladado para trás da câmera.
	view = mgl32.LookAtV(mgl32.Vec3{0, 10, 60}, mgl32.Vec3{0, 0, 60}, mgl32.Vec3{0, 0, -1})
	behind := FromMatrix(proj.Mul4(view).Inv())
	if main.BoundsInFrustum(behind.Bounds()) {
		t.Errorf("projetor atrás da câmera não deveria ser visível")
	}
}

func TestPlaneTestPoint(t *testing.T) {
	pl := PlaneFromPoints(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	if !vecClose(pl.Normal, mgl32.Vec3{0, 0, 1}) {
		t.Fatalf("normal = %v", pl.Normal)
	}
	if pl.TestPoint(mgl32.Vec3{0, 0, 1}) != Front {
		t.Errorf("esperava Front")
	}
	if pl.TestPoint(mgl32.Vec3{0, 0, -1}) != Back {
		t.Errorf("esperava Back")
	}
	if pl.TestPoint(mgl32.Vec3{5, 5, 0}) != OnPlane {
		t.Errorf("esperava OnPlane")
	}
}
