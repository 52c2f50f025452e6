package render

import (
	"fmt"
	"log"

	"DecalProjector/cliente/internal/camera"
	"DecalProjector/cliente/internal/decal"
	"DecalProjector/shared/frustum"
)

// DecalRenderer projeta um decal sobre os renderables a cada frame.
type DecalRenderer struct {
	device Device
	shader *ProjectiveShader

	// Buffer de renderables reaproveitado entre frames
	renderables []Renderable

	disposed bool
}

// NewDecalRenderer compila o shader de decal. Falha se a compilação falhar.
func NewDecalRenderer(device Device, src ShaderSource) (*DecalRenderer, error) {
	shader, err := NewProjectiveShader(device, src)
	if err != nil {
		return nil, fmt.Errorf("falha ao criar shader de decal: %w", err)
	}
	log.Printf("[DecalRenderer] Shader de decal pronto")

	return &DecalRenderer{
		device:      device,
		shader:      shader,
		renderables: make([]Renderable, 0, 64),
	}, nil
}

// Render desenha o decal sobre os renderables dos providers. Se o frustum do
// projetor não for visível pela câmera, nada é feito (nem a rolagem avança).
func (r *DecalRenderer) Render(cam *camera.Perspective, d *decal.Decal, env *Environment, providers []RenderableProvider, dt float32) error {
	if r.disposed {
		return fmt.Errorf("DecalRenderer já foi liberado")
	}
	r.shader.SetDecal(d)
	if d == nil {
		return ErrDecalNotSet
	}
	if err := d.Validate(); err != nil {
		return err
	}

	cam.Update()
	d.Camera.Update()

	if !IsVisible(cam, d) {
		return nil
	}

	d.Update(dt)

	r.renderables = r.renderables[:0]
	for _, p := range providers {
		r.renderables = p.Renderables(r.renderables)
	}

	r.shader.Begin(cam)
	defer r.shader.End()

	for _, rend := range r.renderables {
		if err := r.shader.Render(rend, env); err != nil {
			return err
		}
	}
	return nil
}

// IsVisible testa a AABB dos 8 cantos do frustum do projetor contra o frustum da
// câmera. Teste conservador: pode dar falso positivo, nunca falso negativo.
func IsVisible(cam *camera.Perspective, d *decal.Decal) bool {
	box := frustum.BoxFromPoints(d.Camera.Frustum.Points[:]...)
	return cam.Frustum.BoundsInFrustum(box)
}

// Dispose libera shader e recursos do device. Pode ser chamado mais de uma vez.
func (r *DecalRenderer) Dispose() {
	if r.disposed {
		return
	}
	r.shader.Dispose()
	r.device.Release()
	r.disposed = true
}
