package render

import (
	"errors"

	"DecalProjector/cliente/internal/camera"
	"DecalProjector/cliente/internal/decal"
)

var (
	// ErrDecalNotSet é retornado por Render quando nenhum decal foi configurado.
	ErrDecalNotSet = errors.New("decal de projeção não configurado")
	ErrNotBegun    = errors.New("Render chamado fora de Begin/End")
)

// Uniforms do shader de decal.
const (
	uniformProjectiveMatrix = "u_modelViewProjectionMatrix"
	uniformDecalTexture     = "u_decalTexture"
	uniformDecalMatrix      = "u_decalMatrix"
	uniformWorldTransform   = "u_worldTransform"
	uniformDecalNearFar     = "u_decalCameraClipping"
	uniformScrollSpeed      = "u_scrollSpeed"
	uniformStretchToFrustum = "u_stretchToFrustum"
	uniformLightDirection   = "u_lightDirection"
	uniformAmbientColor     = "u_ambientColor"
)

// decalState é o estado de rasterização do passe de decal.
var decalState = RenderState{
	DepthTest:     true,
	CullBackFaces: true,
	AlphaBlend:    true,
}

// ProjectiveShader envia os uniforms do decal a cada draw call e delega a
// rasterização ao Device.
type ProjectiveShader struct {
	device  Device
	program Program
	decal   *decal.Decal
	camera  *camera.Perspective

	projectiveMatrixLoc int32
	decalTextureLoc     int32
	decalMatrixLoc      int32
	worldTransformLoc   int32
	decalNearFarLoc     int32
	scrollSpeedLoc      int32
	stretchLoc          int32
	lightDirectionLoc   int32
	ambientColorLoc     int32

	disposed bool
}

// NewProjectiveShader compila o shader e registra os uniforms.
func NewProjectiveShader(device Device, src ShaderSource) (*ProjectiveShader, error) {
	program, err := device.Compile(src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	return &ProjectiveShader{
		device:  device,
		program: program,

		projectiveMatrixLoc: program.Location(uniformProjectiveMatrix),
		decalTextureLoc:     program.Location(uniformDecalTexture),
		decalMatrixLoc:      program.Location(uniformDecalMatrix),
		worldTransformLoc:   program.Location(uniformWorldTransform),
		decalNearFarLoc:     program.Location(uniformDecalNearFar),
		scrollSpeedLoc:      program.Location(uniformScrollSpeed),
		stretchLoc:          program.Location(uniformStretchToFrustum),
		lightDirectionLoc:   program.Location(uniformLightDirection),
		ambientColorLoc:     program.Location(uniformAmbientColor),
	}, nil
}

// SetDecal define o decal usado nos próximos Render.
func (s *ProjectiveShader) SetDecal(d *decal.Decal) {
	s.decal = d
}

// Decal retorna o decal atual.
func (s *ProjectiveShader) Decal() *decal.Decal {
	return s.decal
}

// Begin prepara o passe com a câmera de renderização.
func (s *ProjectiveShader) Begin(cam *camera.Perspective) {
	s.camera = cam
	s.device.Begin(cam, decalState)
}

// Render envia os uniforms de um renderable e desenha.
func (s *ProjectiveShader) Render(r Renderable, env *Environment) error {
	if s.decal == nil {
		return ErrDecalNotSet
	}
	if s.camera == nil {
		return ErrNotBegun
	}
	if err := s.decal.Validate(); err != nil {
		return err
	}

	light, err := env.FirstDirectionalLight()
	if err != nil {
		return err
	}
	ambient, err := env.AmbientRGB()
	if err != nil {
		return err
	}

	decalCam := s.decal.Camera
	decalCam.Update()
	s.camera.Update()

	p := s.program
	p.SetMatrix(s.projectiveMatrixLoc, s.camera.Combined)
	p.SetMatrix(s.decalMatrixLoc, decalCam.Combined)
	p.SetInt(s.decalTextureLoc, s.device.BindTexture(*s.decal.Texture))
	p.SetMatrix(s.worldTransformLoc, r.WorldTransform)
	p.SetFloat(s.decalNearFarLoc, decalCam.Near, decalCam.Far)
	p.SetFloat(s.scrollSpeedLoc, s.decal.CurrentScroll())

	var stretch int32
	if s.decal.Stretch {
		stretch = 1
	}
	p.SetInt(s.stretchLoc, stretch)

	p.SetFloat(s.lightDirectionLoc, light.Direction[0], light.Direction[1], light.Direction[2])
	p.SetFloat(s.ambientColorLoc, ambient[0], ambient[1], ambient[2])

	s.device.Draw(p, r)
	return nil
}

// End encerra o passe.
func (s *ProjectiveShader) End() {
	s.device.End()
	s.camera = nil
}

// Dispose libera o programa. Pode ser chamado mais de uma vez.
func (s *ProjectiveShader) Dispose() {
	if s.disposed {
		return
	}
	s.program.Unload()
	s.disposed = true
}
