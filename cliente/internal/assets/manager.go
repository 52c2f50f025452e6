package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"DecalProjector/cliente/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneFile é o nome do manifesto dentro do diretório de configuração.
const SceneFile = "scene.json"

// --- Estruturas JSON ---

// DecalEntry descreve um projetor inicial da cena.
type DecalEntry struct {
	Name        string     `json:"name"`
	Texture     string     `json:"texture"`
	Position    [3]float32 `json:"position"`
	Target      [3]float32 `json:"target"`
	FOV         float32    `json:"fov,omitempty"`
	Near        float32    `json:"near,omitempty"`
	Far         float32    `json:"far,omitempty"`
	Stretch     bool       `json:"stretch,omitempty"`
	Scrolling   bool       `json:"scrolling,omitempty"`
	ScrollSpeed float32    `json:"scrollSpeed,omitempty"`
	Comment     string     `json:"comment,omitempty"`
}

// SceneConfig é o root do scene.json
type SceneConfig struct {
	Textures map[string]string `json:"textures"`
	Decals   []DecalEntry      `json:"decals"`
}

// --- Manager ---

// Manager responde às consultas do app sobre texturas e decals da cena.
type Manager struct {
	baseDir  string
	textures map[string]string
	decals   []DecalEntry
}

// NewManager carrega configDir/scene.json. Sem o arquivo, usa uma cena mínima
// com a textura "checker" (que cai no xadrez gerado).
func NewManager(configDir string) (*Manager, error) {
	m := &Manager{baseDir: filepath.Dir(configDir)}

	data, err := os.ReadFile(filepath.Join(configDir, SceneFile))
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[Assets] %s não encontrado, usando cena padrão", SceneFile)
		conf := DefaultScene()
		m.textures = conf.Textures
		m.decals = conf.Decals
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", SceneFile, err)
	}

	var conf SceneConfig
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", SceneFile, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("%s inválido: %w", SceneFile, err)
	}

	m.textures = conf.Textures
	m.decals = conf.Decals
	log.Printf("[Assets] Cena carregada: %d texturas, %d decals", len(m.textures), len(m.decals))
	return m, nil
}

// DefaultScene é a cena usada quando não há manifesto.
func DefaultScene() SceneConfig {
	return SceneConfig{
		Textures: map[string]string{"checker": "textures/checker.png"},
		Decals: []DecalEntry{{
			Name:     "main",
			Texture:  "checker",
			Position: [3]float32{0, 12, 0},
			Target:   [3]float32{0, 0, 0},
		}},
	}
}

// Validate confere que há ao menos um decal e que toda textura referenciada existe.
func (c *SceneConfig) Validate() error {
	if len(c.Decals) == 0 {
		return fmt.Errorf("nenhum decal definido")
	}
	seen := make(map[string]bool, len(c.Decals))
	for _, d := range c.Decals {
		if d.Name == "" {
			return fmt.Errorf("decal sem nome")
		}
		if seen[d.Name] {
			return fmt.Errorf("decal duplicado: %s", d.Name)
		}
		seen[d.Name] = true
		if _, ok := c.Textures[d.Texture]; !ok {
			return fmt.Errorf("decal %s usa textura desconhecida %q", d.Name, d.Texture)
		}
		if d.Position == d.Target {
			return fmt.Errorf("decal %s: posição e alvo coincidem", d.Name)
		}
	}
	return nil
}

// --- Consultas Públicas ---

// TextureKeys retorna as chaves de textura em ordem alfabética.
func (m *Manager) TextureKeys() []string {
	keys := make([]string, 0, len(m.textures))
	for k := range m.textures {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TexturePath resolve o caminho de uma textura relativo ao diretório de assets.
func (m *Manager) TexturePath(key string) (string, bool) {
	p, ok := m.textures[key]
	if !ok {
		return "", false
	}
	if filepath.IsAbs(p) {
		return p, true
	}
	return filepath.Join(m.baseDir, p), true
}

// Decals retorna os decals na ordem do manifesto.
func (m *Manager) Decals() []DecalEntry {
	return m.decals
}

// GetDecal retorna o decal pelo nome ou nil.
func (m *Manager) GetDecal(name string) *DecalEntry {
	for i := range m.decals {
		if m.decals[i].Name == name {
			return &m.decals[i]
		}
	}
	return nil
}

// NewProjector cria a câmera de projeção do decal. Campos zerados usam os
// valores de def.
func (e *DecalEntry) NewProjector(def DecalEntry) *camera.Perspective {
	fov, near, far := e.FOV, e.Near, e.Far
	if fov <= 0 {
		fov = def.FOV
	}
	if near <= 0 {
		near = def.Near
	}
	if far <= near {
		far = def.Far
	}

	p := camera.NewPerspective(fov, 1, 1)
	p.Near = near
	p.Far = far
	p.Position = mgl32.Vec3(e.Position)
	target := mgl32.Vec3(e.Target)

	// Projetor vertical usa -Z como "cima" da imagem.
	if dir := target.Sub(p.Position).Normalize(); dir.Y() > 0.99 || dir.Y() < -0.99 {
		p.Up = mgl32.Vec3{0, 0, -1}
	}
	p.LookAt(target)
	p.Update()
	return p
}
