package render

import (
	"DecalProjector/cliente/internal/camera"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeProgram grava tudo que é enviado para a GPU.
type fakeProgram struct {
	locs     map[string]int32
	matrices map[int32]mgl32.Mat4
	floats   map[int32][]float32
	ints     map[int32]int32
	uploads  int
	unloads  int
}

func newFakeProgram() *fakeProgram {
	return &fakeProgram{
		locs:     make(map[string]int32),
		matrices: make(map[int32]mgl32.Mat4),
		floats:   make(map[int32][]float32),
		ints:     make(map[int32]int32),
	}
}

func (p *fakeProgram) Location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}
	loc := int32(len(p.locs))
	p.locs[name] = loc
	return loc
}

func (p *fakeProgram) SetMatrix(loc int32, m mgl32.Mat4) {
	p.matrices[loc] = m
	p.uploads++
}

func (p *fakeProgram) SetFloat(loc int32, v ...float32) {
	p.floats[loc] = append([]float32(nil), v...)
	p.uploads++
}

func (p *fakeProgram) SetInt(loc int32, v int32) {
	p.ints[loc] = v
	p.uploads++
}

func (p *fakeProgram) Unload() {
	p.unloads++
}

// fakeDevice substitui a Raylib nos testes.
type fakeDevice struct {
	compileErr error
	program    *fakeProgram

	begins   int
	ends     int
	releases int
	state    RenderState
	bound    []rl.Texture2D
	drawn    []Renderable
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{program: newFakeProgram()}
}

func (d *fakeDevice) Compile(vertex, fragment string) (Program, error) {
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	return d.program, nil
}

func (d *fakeDevice) Begin(cam *camera.Perspective, state RenderState) {
	d.begins++
	d.state = state
	d.bound = d.bound[:0]
}

func (d *fakeDevice) BindTexture(tex rl.Texture2D) int32 {
	for i, b := range d.bound {
		if b.ID == tex.ID {
			return int32(i)
		}
	}
	d.bound = append(d.bound, tex)
	return int32(len(d.bound) - 1)
}

func (d *fakeDevice) Draw(p Program, r Renderable) {
	d.drawn = append(d.drawn, r)
}

func (d *fakeDevice) End() {
	d.ends++
}

func (d *fakeDevice) Release() {
	d.releases++
}

// sliceProvider fornece uma lista fixa de renderables.
type sliceProvider []Renderable

func (s sliceProvider) Renderables(out []Renderable) []Renderable {
	return append(out, s...)
}
