// Package decal descreve um decal projetado: uma textura lançada sobre a cena a
// partir de uma câmera virtual (projetor), como um slide ou o "cookie" de uma lanterna.
package decal

import (
	"errors"

	"DecalProjector/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultScrollSpeed é a velocidade de rolagem inicial, em unidades de UV por segundo.
const DefaultScrollSpeed float32 = 0.1

var (
	ErrNoCamera  = errors.New("decal sem câmera de projeção")
	ErrNoTexture = errors.New("decal sem textura")
)

// Decal guarda o projetor, a textura e o estado de stretch/rolagem.
// Camera e Texture são emprestados: o decal nunca os libera.
type Decal struct {
	Camera  *camera.Perspective
	Texture *rl.Texture2D

	// Stretch estica a textura até as bordas do frustum.
	Stretch bool

	Scrolling   bool
	ScrollSpeed float32

	currentScroll float32
}

// New cria um decal com a velocidade de rolagem padrão e rolagem desligada.
func New(cam *camera.Perspective, tex *rl.Texture2D) *Decal {
	return &Decal{
		Camera:      cam,
		Texture:     tex,
		ScrollSpeed: DefaultScrollSpeed,
	}
}

// Update acumula a rolagem enquanto Scrolling estiver ligado. O offset não tem
// limite e não é normalizado; o shader aplica fract() na UV.
func (d *Decal) Update(dt float32) {
	if d.Scrolling {
		d.currentScroll += d.ScrollSpeed * dt
	}
}

// CurrentScroll retorna o offset acumulado.
func (d *Decal) CurrentScroll() float32 {
	return d.currentScroll
}

// Validate confere se o decal pode ser renderizado.
func (d *Decal) Validate() error {
	if d.Camera == nil {
		return ErrNoCamera
	}
	if d.Texture == nil {
		return ErrNoTexture
	}
	return nil
}
