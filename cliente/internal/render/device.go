package render

import (
	"errors"

	"DecalProjector/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNoDirectionalLight = errors.New("ambiente sem luz direcional")
	ErrNoAmbientLight     = errors.New("ambiente sem cor ambiente")
)

// Program é um shader já compilado na GPU.
type Program interface {
	Location(name string) int32
	SetMatrix(loc int32, m mgl32.Mat4)
	// SetFloat envia float, vec2, vec3 ou vec4 conforme a quantidade de valores.
	SetFloat(loc int32, v ...float32)
	SetInt(loc int32, v int32)
	Unload()
}

// RenderState é o estado de rasterização aplicado em Device.Begin.
type RenderState struct {
	DepthTest     bool // GL_LEQUAL
	CullBackFaces bool
	AlphaBlend    bool // SRC_ALPHA, ONE_MINUS_SRC_ALPHA
}

// Device é a fronteira com o motor gráfico: compila programas, liga texturas,
// aplica estado e desenha malhas.
type Device interface {
	Compile(vertex, fragment string) (Program, error)
	Begin(cam *camera.Perspective, state RenderState)
	// BindTexture liga a textura em uma unidade livre e retorna o índice da unidade.
	BindTexture(tex rl.Texture2D) int32
	Draw(p Program, r Renderable)
	End()
	// Release libera os recursos do próprio device. Idempotente.
	Release()
}

// Renderable é uma malha da cena que recebe a projeção.
type Renderable struct {
	Mesh           rl.Mesh
	WorldTransform mgl32.Mat4
}

// RenderableProvider acrescenta seus renderables em out e devolve o slice.
type RenderableProvider interface {
	Renderables(out []Renderable) []Renderable
}

// DirectionalLight é uma luz direcional da cena.
type DirectionalLight struct {
	Direction mgl32.Vec3
	Color     rl.Color
}

// Environment é a iluminação da cena vista pelo shader de decal.
type Environment struct {
	DirectionalLights []DirectionalLight
	Ambient           *rl.Color
}

// NewEnvironment cria um ambiente com uma luz direcional e cor ambiente.
func NewEnvironment(lightDir mgl32.Vec3, ambient rl.Color) *Environment {
	return &Environment{
		DirectionalLights: []DirectionalLight{{Direction: lightDir, Color: rl.White}},
		Ambient:           &ambient,
	}
}

// FirstDirectionalLight retorna a primeira luz direcional.
func (e *Environment) FirstDirectionalLight() (DirectionalLight, error) {
	if e == nil || len(e.DirectionalLights) == 0 {
		return DirectionalLight{}, ErrNoDirectionalLight
	}
	return e.DirectionalLights[0], nil
}

// AmbientRGB retorna a cor ambiente normalizada (0..1).
func (e *Environment) AmbientRGB() (mgl32.Vec3, error) {
	if e == nil || e.Ambient == nil {
		return mgl32.Vec3{}, ErrNoAmbientLight
	}
	c := e.Ambient
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}, nil
}
