package render

import (
	"fmt"
	"log"
	"math"
	"strings"
	"unsafe"

	"DecalProjector/cliente/internal/camera"
	"DecalProjector/shared/util"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// maxMaterialMaps é o MAX_MATERIAL_MAPS da Raylib: cada mapa vira uma unidade de textura.
const maxMaterialMaps = 12

// CompileError é retornado quando a Raylib não consegue compilar/linkar o shader.
// Log traz as mensagens da Raylib capturadas durante a compilação.
type CompileError struct {
	Log string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return "erro ao compilar shader"
	}
	return fmt.Sprintf("erro ao compilar shader: %s", e.Log)
}

// ForwardTraceLog repassa o log interno da Raylib para o log padrão.
func ForwardTraceLog(level int, text string) {
	log.Printf("[Raylib] %s", text)
}

// RaylibDevice implementa Device sobre a Raylib. Usa um único material cujas
// entradas de mapa servem como unidades de textura do decal.
type RaylibDevice struct {
	material    rl.Material
	hasMaterial bool
	bound       []rl.Texture2D
	lastSlots   int
	blending    bool

	prevProjection rl.Matrix
	prevModelview  rl.Matrix
}

// NewRaylibDevice cria o device. Requer a janela já inicializada.
func NewRaylibDevice() *RaylibDevice {
	return &RaylibDevice{bound: make([]rl.Texture2D, 0, maxMaterialMaps)}
}

// Compile compila o par de shaders e captura o log da Raylib em caso de falha.
func (d *RaylibDevice) Compile(vertex, fragment string) (Program, error) {
	var compileLog []string
	rl.SetTraceLogCallback(func(level int, text string) {
		if level >= int(rl.LogWarning) {
			compileLog = append(compileLog, text)
		}
		ForwardTraceLog(level, text)
	})
	defer rl.SetTraceLogCallback(ForwardTraceLog)

	shader := rl.LoadShaderFromMemory(vertex, fragment)
	if !rl.IsShaderValid(shader) || shader.ID == rl.GetShaderIdDefault() {
		return nil, &CompileError{Log: strings.Join(compileLog, "\n")}
	}

	log.Printf("[Device] Shader compilado (ID: %d)", shader.ID)
	return &raylibProgram{shader: shader}, nil
}

// Begin aplica o estado de render e as matrizes da câmera na rlgl.
func (d *RaylibDevice) Begin(cam *camera.Perspective, state RenderState) {
	rl.DrawRenderBatchActive()

	d.prevProjection = rl.GetMatrixProjection()
	d.prevModelview = rl.GetMatrixModelview()
	rl.SetMatrixProjection(util.ToMatrix(cam.Projection))
	rl.SetMatrixModelview(util.ToMatrix(cam.View))

	// A rlgl já inicializa glDepthFunc com GL_LEQUAL.
	if state.DepthTest {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
	if state.CullBackFaces {
		rl.EnableBackfaceCulling()
	} else {
		rl.DisableBackfaceCulling()
	}
	d.blending = state.AlphaBlend
	if d.blending {
		rl.BeginBlendMode(rl.BlendAlpha)
	}

	d.bound = d.bound[:0]
}

// BindTexture reaproveita a unidade se a textura já estiver ligada neste passe.
func (d *RaylibDevice) BindTexture(tex rl.Texture2D) int32 {
	for i, b := range d.bound {
		if b.ID == tex.ID {
			return int32(i)
		}
	}
	if len(d.bound) == maxMaterialMaps {
		log.Printf("[Device] AVISO: unidades de textura esgotadas, reutilizando a última")
		d.bound[maxMaterialMaps-1] = tex
		return maxMaterialMaps - 1
	}
	d.bound = append(d.bound, tex)
	return int32(len(d.bound) - 1)
}

// Draw desenha a malha com o programa e as texturas ligadas.
func (d *RaylibDevice) Draw(p Program, r Renderable) {
	rp, ok := p.(*raylibProgram)
	if !ok || rp.unloaded {
		return
	}
	if !d.hasMaterial {
		d.material = rl.LoadMaterialDefault()
		d.hasMaterial = true
	}

	d.material.Shader = rp.shader
	maps := unsafe.Slice(d.material.Maps, maxMaterialMaps)
	for i, tex := range d.bound {
		maps[i].Texture = tex
	}
	// Limpa unidades usadas por um draw anterior.
	for i := len(d.bound); i < d.lastSlots; i++ {
		maps[i].Texture = rl.Texture2D{}
	}
	d.lastSlots = len(d.bound)

	rl.DrawMesh(r.Mesh, d.material, util.ToMatrix(r.WorldTransform))
}

// End restaura blending, culling e matrizes anteriores.
func (d *RaylibDevice) End() {
	if d.blending {
		rl.EndBlendMode()
		d.blending = false
	}
	rl.DrawRenderBatchActive()
	rl.EnableBackfaceCulling()
	rl.SetMatrixProjection(d.prevProjection)
	rl.SetMatrixModelview(d.prevModelview)
}

// Release libera o material. As texturas são emprestadas e o shader pertence ao
// Program, então ambos são desligados antes do UnloadMaterial.
func (d *RaylibDevice) Release() {
	if !d.hasMaterial {
		return
	}
	maps := unsafe.Slice(d.material.Maps, maxMaterialMaps)
	for i := range maps {
		maps[i].Texture = rl.Texture2D{}
	}
	d.material.Shader = rl.Shader{ID: rl.GetShaderIdDefault()}
	rl.UnloadMaterial(d.material)
	d.hasMaterial = false
	d.lastSlots = 0
}

type raylibProgram struct {
	shader   rl.Shader
	unloaded bool
}

func (p *raylibProgram) Location(name string) int32 {
	return rl.GetShaderLocation(p.shader, name)
}

func (p *raylibProgram) SetMatrix(loc int32, m mgl32.Mat4) {
	rl.SetShaderValueMatrix(p.shader, loc, util.ToMatrix(m))
}

func (p *raylibProgram) SetFloat(loc int32, v ...float32) {
	var kind rl.ShaderUniformDataType
	switch len(v) {
	case 1:
		kind = rl.ShaderUniformFloat
	case 2:
		kind = rl.ShaderUniformVec2
	case 3:
		kind = rl.ShaderUniformVec3
	case 4:
		kind = rl.ShaderUniformVec4
	default:
		return
	}
	rl.SetShaderValue(p.shader, loc, v, kind)
}

// SetInt envia um inteiro. O binding da Raylib só aceita []float32, então os bits
// do inteiro vão reinterpretados dentro do float.
func (p *raylibProgram) SetInt(loc int32, v int32) {
	rl.SetShaderValue(p.shader, loc, []float32{math.Float32frombits(uint32(v))}, rl.ShaderUniformInt)
}

func (p *raylibProgram) Unload() {
	if p.unloaded {
		return
	}
	rl.UnloadShader(p.shader)
	p.unloaded = true
}
