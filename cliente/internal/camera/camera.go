package camera

import (
	"math"

	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController gerencia a câmera orbital da cena de demonstração.
// Movimento suave e zoom que afeta a velocidade.
type CameraController struct {
	// Estado interno do Raylib
	RLCamera rl.Camera3D

	// Configurações
	MinZoom      float32
	MaxZoom      float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado Alvo (para interpolação suave)
	TargetLookAt rl.Vector3 // Para onde a câmera quer olhar (ponto central)
	TargetZoom   float32    // Zoom desejado
	TargetAngleY float32    // Rotação horizontal atual (radianos)
	TargetAngleX float32    // Rotação vertical atual (radianos)

	// Estado Atual (interpolado)
	CurrentLookAt rl.Vector3
	CurrentZoom   float32
}

// New cria um novo controlador de câmera.
func New(fov float32) *CameraController {
	c := &CameraController{
		MinZoom:      5.0,
		MaxZoom:      200.0,
		MoveSpeed:    50.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    10.0,
		SmoothFactor: 0.1,

		TargetLookAt: rl.Vector3{X: 0, Y: 0, Z: 0},
		TargetZoom:   40.0,
		TargetAngleY: 45.0 * rl.Deg2rad,
		TargetAngleX: -35.0 * rl.Deg2rad,
	}

	// Inicializa os valores atuais com os alvos para não "saltar" no início
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentZoom = c.TargetZoom

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       fov,
		Projection: rl.CameraPerspective,
	}

	c.UpdateWait()
	return c
}

// SetTarget define o alvo da câmera imediatamente (sem suavização).
func (c *CameraController) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.UpdateWait()
}

// Update interpola alvo e zoom e recalcula a posição. Deve ser chamado a cada frame.
func (c *CameraController) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	curVec := util.ToVec3(c.CurrentLookAt)
	tgtVec := util.ToVec3(c.TargetLookAt)
	lerpedVec := curVec.Add(tgtVec.Sub(curVec).Mul(factor))

	c.CurrentLookAt = util.ToVector3(lerpedVec)
	c.CurrentZoom = util.Lerp(c.CurrentZoom, c.TargetZoom, factor)

	c.UpdateWait()
}

// UpdateWait recalcula a posição da câmera baseada nos ângulos e zoom atuais.
func (c *CameraController) UpdateWait() {
	// Coordenadas esféricas -> cartesianas
	// AngleY = Azimute, AngleX = Elevação
	cosX := float32(math.Cos(float64(c.TargetAngleX)))
	sinX := float32(math.Sin(float64(c.TargetAngleX)))
	cosY := float32(math.Cos(float64(c.TargetAngleY)))
	sinY := float32(math.Sin(float64(c.TargetAngleY)))

	dist := c.CurrentZoom
	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + dist*cosX*sinY,
		Y: c.CurrentLookAt.Y + dist*-sinX, // sinX negativo pois olhamos de cima
		Z: c.CurrentLookAt.Z + dist*cosX*cosY,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// SyncPerspective copia o estado da câmera Raylib para uma Perspective, com os
// mesmos planos de corte que rl.BeginMode3D usa.
func (c *CameraController) SyncPerspective(p *Perspective, width, height float32) {
	p.Position = util.ToVec3(c.RLCamera.Position)
	p.Up = util.ToVec3(c.RLCamera.Up)
	p.FieldOfView = c.RLCamera.Fovy
	p.Near = RaylibNear
	p.Far = RaylibFar
	p.ViewportWidth = width
	p.ViewportHeight = height
	p.LookAt(util.ToVec3(c.RLCamera.Target))
	p.Update()
}

// HandleInput processa entrada do usuário. Retorna true se houve input de movimento.
func (c *CameraController) HandleInput(dt float32) bool {
	moved := false

	// Zoom com Scroll
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetZoom = util.Clamp(c.TargetZoom-wheel*c.ZoomSpeed, c.MinZoom, c.MaxZoom)
	}

	// Rotação com botão direito (Orbit). O esquerdo fica livre para a UI.
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação para não virar a câmera de ponta cabeça
		c.TargetAngleX = util.Clamp(c.TargetAngleX, -89.0*rl.Deg2rad, -5.0*rl.Deg2rad)
	}

	// Movimento WASD relativo à câmera, projetado no plano XZ (chão)
	camPos := util.ToVec3(c.RLCamera.Position)
	targetPos := util.ToVec3(c.TargetLookAt)

	forward := targetPos.Sub(camPos)
	forward[1] = 0
	if forward.Len() == 0 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Quanto mais longe, mais rápido.
	currentSpeed := c.MoveSpeed * (c.CurrentZoom / 50.0) * dt

	move := mgl32.Vec3{0, 0, 0}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		targetPos = targetPos.Add(move.Normalize().Mul(currentSpeed))
		c.TargetLookAt = util.ToVector3(targetPos)
		moved = true
	}

	return moved
}
