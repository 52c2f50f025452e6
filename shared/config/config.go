package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config armazena as configurações do DecalProjector.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Arquivos
	AssetsDir string `json:"assets_dir"` // Onde fica o scene.json
	ShaderDir string `json:"shader_dir"` // Vazio = shaders embutidos no binário
	PresetsDB string `json:"presets_db"` // Banco SQLite dos presets de decal

	// Câmera
	FOV         float32 `json:"fov"`
	CameraSpeed float32 `json:"camera_speed"`
	ZoomSpeed   float32 `json:"zoom_speed"`

	// Decal (valores usados quando o manifesto não define nada)
	DecalFOV         float32 `json:"decal_fov"`
	DecalNear        float32 `json:"decal_near"`
	DecalFar         float32 `json:"decal_far"`
	DecalScrollSpeed float32 `json:"decal_scroll_speed"`
	ProjectorSpeed   float32 `json:"projector_speed"`

	// Iluminação
	LightDirection [3]float32 `json:"light_direction"`
	AmbientColor   [3]uint8   `json:"ambient_color"`

	// Debug
	ShowDebugInfo  bool `json:"show_debug_info"`
	ShowGrid       bool `json:"show_grid"`
	ShowFrustum    bool `json:"show_frustum"`
	FrustumAsLines bool `json:"frustum_as_lines"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "DecalProjector",
		Fullscreen:   false,
		TargetFPS:    60,

		AssetsDir: "assets/config",
		ShaderDir: "",
		PresetsDB: "saves/presets.db",

		FOV:         45.0,
		CameraSpeed: 50.0,
		ZoomSpeed:   10.0,

		DecalFOV:         40.0,
		DecalNear:        1.0,
		DecalFar:         30.0,
		DecalScrollSpeed: 0.1,
		ProjectorSpeed:   8.0,

		LightDirection: [3]float32{-0.4, -1.0, -0.3},
		AmbientColor:   [3]uint8{90, 90, 100},

		ShowDebugInfo:  true,
		ShowGrid:       true,
		ShowFrustum:    true,
		FrustumAsLines: false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações do config.json ao lado do executável.
// Se o arquivo não existir ou estiver inválido, retorna as configurações padrão.
func Load() *Config {
	cfg, err := LoadFile(configPath())
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// LoadFile carrega as configurações de um arquivo JSON específico.
// Campos ausentes no arquivo mantêm o valor padrão.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", path, err)
	}

	return cfg, nil
}

// Save salva as configurações ao lado do executável.
func (c *Config) Save() error {
	return c.SaveFile(configPath())
}

// SaveFile salva as configurações em um arquivo JSON.
func (c *Config) SaveFile(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
