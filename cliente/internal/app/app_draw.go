package app

import (
	"fmt"
	"math"

	"DecalProjector/cliente/internal/render"
	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.drawHUD()

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D e, por cima, os decals.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	// Grid de referência
	if a.Config.ShowGrid {
		rl.DrawGrid(40, 1.0)
	}

	a.scene.Draw()
	a.renderDecals()

	if a.Config.ShowFrustum {
		if p := a.activeProjector(); p != nil {
			a.debug.Render(p.Decal)
		}
	}

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	a.drawStatus()

	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(340)
	height := int32(235)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	// Divisor
	rl.DrawLine(x+10, y+35, x+width-10, y+35, rl.NewColor(100, 100, 100, 100))

	rl.DrawText("PROJETOR", x+10, y+45, 12, rl.Gray)
	if p := a.activeProjector(); p != nil {
		d := p.Decal
		pos := d.Camera.Position
		rl.DrawText(fmt.Sprintf("%s (%d/%d)  [%s]", p.Name, a.active%len(a.projectors)+1, len(a.projectors), p.TextureKey), x+10, y+60, 16, rl.Gold)
		dist := math.Sqrt(float64(util.DistSq(a.Cam.RLCamera.Position, util.ToVector3(pos))))
		rl.DrawText(fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)  Dist: %.1f", pos.X(), pos.Y(), pos.Z(), dist), x+10, y+80, 14, rl.White)
		rl.DrawText(fmt.Sprintf("Stretch: %s | Scroll: %s %.2f (%.2f)",
			onOff(d.Stretch), onOff(d.Scrolling), d.ScrollSpeed, d.CurrentScroll()), x+10, y+98, 14, rl.LightGray)

		visible := "fora da tela"
		visColor := rl.Red
		if d.Validate() == nil && render.IsVisible(a.view, d) {
			visible = "visível"
			visColor = rl.Green
		}
		rl.DrawText("Frustum: "+visible, x+10, y+116, 14, visColor)
	}

	// Divisor
	rl.DrawLine(x+10, y+138, x+width-10, y+138, rl.NewColor(100, 100, 100, 100))

	// Atalhos Rápidos
	rl.DrawText("CONTROLES", x+10, y+146, 12, rl.Gray)
	rl.DrawText("Setas/PgUp/PgDn: Projetor | N: Próximo", x+10, y+162, 14, rl.LightGray)
	rl.DrawText("T: Stretch | R: Scroll | +/-: Velocidade", x+10, y+180, 14, rl.LightGray)
	rl.DrawText("Tab: Textura | F/L: Frustum | F5/F9: Preset", x+10, y+198, 14, rl.LightGray)
	rl.DrawText("WASD/Botão dir./Scroll: Câmera | F3: HUD", x+10, y+216, 14, rl.SkyBlue)

	// Título no canto inferior direito
	title := "DecalProjector v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawStatus mostra a última mensagem de status por alguns segundos.
func (a *App) drawStatus() {
	if a.status == "" || rl.GetTime()-a.statusTime > statusDuration {
		return
	}
	rl.DrawText(a.status, 10, int32(rl.GetScreenHeight())-30, 18, rl.Gold)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
