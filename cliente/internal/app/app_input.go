package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateCamera atualiza a câmera orbital e a Perspective usada pelo decal.
func (a *App) updateCamera(dt float32) {
	// Processa input (WASD, Mouse, Zoom)
	a.Cam.HandleInput(dt)

	// Atualiza física/interpolação da câmera
	a.Cam.Update(dt)

	a.Cam.SyncPerspective(a.view, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// updateInput processa os atalhos de teclado.
func (a *App) updateInput() {
	// Toggle debug info
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}

	// Toggle grid
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Frustum do projetor
	if rl.IsKeyPressed(rl.KeyF) {
		a.Config.ShowFrustum = !a.Config.ShowFrustum
	}
	if rl.IsKeyPressed(rl.KeyL) {
		a.Config.FrustumAsLines = !a.Config.FrustumAsLines
		a.debug.RenderFrustumAsLines = a.Config.FrustumAsLines
	}

	// Próximo projetor
	if rl.IsKeyPressed(rl.KeyN) && len(a.projectors) > 0 {
		a.active = (a.active + 1) % len(a.projectors)
		a.setStatus("Projetor: " + a.activeProjector().Name)
	}

	p := a.activeProjector()
	if p == nil {
		return
	}
	d := p.Decal

	if rl.IsKeyPressed(rl.KeyT) {
		d.Stretch = !d.Stretch
		log.Printf("[App] %s: stretch=%v", p.Name, d.Stretch)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		d.Scrolling = !d.Scrolling
		log.Printf("[App] %s: scrolling=%v", p.Name, d.Scrolling)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		d.ScrollSpeed = adjustScrollSpeed(d.ScrollSpeed, scrollSpeedStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		d.ScrollSpeed = adjustScrollSpeed(d.ScrollSpeed, -scrollSpeedStep)
	}

	// Ciclo de texturas
	if rl.IsKeyPressed(rl.KeyTab) {
		p.TextureKey = a.textures.Next(p.TextureKey)
		if tex := a.textures.Get(p.TextureKey); tex != nil {
			d.Texture = tex
		}
		a.setStatus("Textura: " + p.TextureKey)
	}

	// Presets (SQLite)
	if rl.IsKeyPressed(rl.KeyF5) {
		a.savePreset(p)
	}
	if rl.IsKeyPressed(rl.KeyF9) {
		a.loadPreset(p)
	}
}

// projectorInput lê as setas e PgUp/PgDn como deslocamento (x, y, z) unitário.
func projectorInput() (dx, dy, dz float32) {
	if rl.IsKeyDown(rl.KeyLeft) {
		dx--
	}
	if rl.IsKeyDown(rl.KeyRight) {
		dx++
	}
	if rl.IsKeyDown(rl.KeyUp) {
		dz--
	}
	if rl.IsKeyDown(rl.KeyDown) {
		dz++
	}
	if rl.IsKeyDown(rl.KeyPageUp) {
		dy++
	}
	if rl.IsKeyDown(rl.KeyPageDown) {
		dy--
	}
	return dx, dy, dz
}
