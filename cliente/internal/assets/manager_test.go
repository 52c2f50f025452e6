package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testScene = `{
  "textures": {
    "logo": "textures/logo.png",
    "arrows": "/abs/arrows.png"
  },
  "decals": [
    {"name": "main", "texture": "logo", "position": [0, 12, 0], "target": [0, 0, 0], "fov": 35, "near": 2, "far": 20},
    {"name": "wall", "texture": "arrows", "position": [0, 3, 0], "target": [0, 3, -8], "scrolling": true, "scrollSpeed": 0.5}
  ]
}`

func writeScene(t *testing.T, content string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "assets", "config")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, SceneFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestNewManager(t *testing.T) {
	dir := writeScene(t, testScene)

	m, err := NewManager(dir)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	keys := m.TextureKeys()
	if len(keys) != 2 || keys[0] != "arrows" || keys[1] != "logo" {
		t.Errorf("keys = %v, want [arrows logo]", keys)
	}

	p, ok := m.TexturePath("logo")
	want := filepath.Join(filepath.Dir(dir), "textures", "logo.png")
	if !ok || p != want {
		t.Errorf("TexturePath(logo) = %q, want %q", p, want)
	}
	if p, _ := m.TexturePath("arrows"); p != "/abs/arrows.png" {
		t.Errorf("caminho absoluto alterado: %q", p)
	}
	if _, ok := m.TexturePath("nope"); ok {
		t.Errorf("textura desconhecida deveria falhar")
	}

	if len(m.Decals()) != 2 {
		t.Fatalf("decals = %d, want 2", len(m.Decals()))
	}
	wall := m.GetDecal("wall")
	if wall == nil || !wall.Scrolling || wall.ScrollSpeed != 0.5 {
		t.Errorf("wall = %+v", wall)
	}
	if m.GetDecal("nope") != nil {
		t.Errorf("GetDecal(nope) deveria ser nil")
	}
}

func TestNewManagerMissingFile(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("sem scene.json deveria usar a cena padrão: %v", err)
	}
	if len(m.Decals()) != 1 || m.Decals()[0].Texture != "checker" {
		t.Errorf("cena padrão inesperada: %+v", m.Decals())
	}
}

func TestSceneValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"json quebrado", `{"decals": [`},
		{"sem decals", `{"textures": {"a": "a.png"}, "decals": []}`},
		{"textura desconhecida", `{"textures": {}, "decals": [{"name": "d", "texture": "x", "position": [0,1,0]}]}`},
		{"nome duplicado", `{"textures": {"a": "a.png"}, "decals": [
			{"name": "d", "texture": "a", "position": [0,1,0]},
			{"name": "d", "texture": "a", "position": [0,2,0]}]}`},
		{"posição igual ao alvo", `{"textures": {"a": "a.png"}, "decals": [{"name": "d", "texture": "a"}]}`},
	}

	for _, tt := range tests {
		dir := writeScene(t, tt.content)
		if _, err := NewManager(dir); err == nil {
			t.Errorf("%s: esperava erro", tt.name)
		}
	}
}

func TestNewProjector(t *testing.T) {
	def := DecalEntry{FOV: 40, Near: 1, Far: 30}

	tests := []struct {
		name                  string
		entry                 DecalEntry
		wantFOV, wantN, wantF float32
	}{
		{"explícito", DecalEntry{Position: [3]float32{0, 10, 0}, FOV: 35, Near: 2, Far: 20}, 35, 2, 20},
		{"padrões", DecalEntry{Position: [3]float32{0, 10, 0}}, 40, 1, 30},
		{"far inválido", DecalEntry{Position: [3]float32{0, 10, 0}, Near: 5, Far: 3}, 40, 5, 30},
	}

	for _, tt := range tests {
		p := tt.entry.NewProjector(def)
		if p.FieldOfView != tt.wantFOV || p.Near != tt.wantN || p.Far != tt.wantF {
			t.Errorf("%s: fov/near/far = %v/%v/%v", tt.name, p.FieldOfView, p.Near, p.Far)
		}
		if !p.Direction.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-5) {
			t.Errorf("%s: direção = %v, want para baixo", tt.name, p.Direction)
		}
	}
}
