package app

import (
	"errors"
	"log"

	"DecalProjector/cliente/internal/camera"
	"DecalProjector/cliente/internal/presets"
	"DecalProjector/cliente/internal/render"
	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	scrollSpeedStep float32 = 0.05
	maxScrollSpeed  float32 = 2.0

	// Altura mínima do projetor acima do chão
	minProjectorHeight float32 = 0.5

	statusDuration = 2.5 // segundos
)

// updateProjector move o projetor ativo com as setas e PgUp/PgDn.
func (a *App) updateProjector(dt float32) {
	p := a.activeProjector()
	if p == nil {
		return
	}

	dx, dy, dz := projectorInput()
	if dx == 0 && dy == 0 && dz == 0 {
		return
	}
	step := a.Config.ProjectorSpeed * dt
	moveProjector(p.Decal.Camera, mgl32.Vec3{dx, dy, dz}.Mul(step))
}

// moveProjector translada o projetor mantendo a direção e o mantém acima do chão.
func moveProjector(cam *camera.Perspective, delta mgl32.Vec3) {
	pos := cam.Position.Add(delta)
	if pos.Y() < minProjectorHeight {
		pos[1] = minProjectorHeight
	}
	cam.Position = pos
	cam.Update()
}

// adjustScrollSpeed soma step e limita a velocidade a [-max, max].
func adjustScrollSpeed(speed, step float32) float32 {
	return util.Clamp(speed+step, -maxScrollSpeed, maxScrollSpeed)
}

func (a *App) savePreset(p *projector) {
	if a.presets == nil {
		a.setStatus("Presets desativados")
		return
	}
	if err := a.presets.Save(presets.FromDecal(p.Name, p.TextureKey, p.Decal)); err != nil {
		log.Printf("[App] Erro ao salvar preset %s: %v", p.Name, err)
		a.setStatus("Erro ao salvar preset")
		return
	}
	log.Printf("[App] Preset %s salvo", p.Name)
	a.setStatus("Preset salvo: " + p.Name)
}

func (a *App) loadPreset(p *projector) {
	if a.presets == nil {
		a.setStatus("Presets desativados")
		return
	}
	preset, err := a.presets.Load(p.Name)
	if errors.Is(err, presets.ErrNotFound) {
		a.setStatus("Nenhum preset para " + p.Name)
		return
	}
	if err != nil {
		log.Printf("[App] Erro ao carregar preset %s: %v", p.Name, err)
		a.setStatus("Erro ao carregar preset")
		return
	}

	preset.Apply(p.Decal)
	if tex := a.textures.Get(preset.Texture); tex != nil {
		p.TextureKey = preset.Texture
		p.Decal.Texture = tex
	}
	a.setStatus("Preset carregado: " + p.Name)
}

// setStatus mostra uma mensagem curta no HUD.
func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusTime = rl.GetTime()
}

// renderDecals projeta todos os decals sobre a cena. Erros repetidos são
// registrados uma vez só.
func (a *App) renderDecals() {
	providers := []render.RenderableProvider{a.scene}
	dt := rl.GetFrameTime()

	for _, p := range a.projectors {
		err := a.decalRenderer.Render(a.view, p.Decal, a.env, providers, dt)
		if err == nil {
			continue
		}
		if msg := err.Error(); msg != a.lastErr {
			log.Printf("[DecalRenderer] %s: %v", p.Name, err)
			a.lastErr = msg
		}
	}
}
