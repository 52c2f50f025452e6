package render

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

const (
	decalVertexFile   = "projective_decal.vert.glsl"
	decalFragmentFile = "projective_decal.frag.glsl"
)

//go:embed shaders/*.glsl
var shaderFS embed.FS

// ShaderSource é o par vertex/fragment do shader de decal.
type ShaderSource struct {
	Vertex   string
	Fragment string
}

// DefaultShaderSource retorna os shaders embutidos no binário.
func DefaultShaderSource() (ShaderSource, error) {
	vert, err := shaderFS.ReadFile("shaders/" + decalVertexFile)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("falha ao ler %s embutido: %w", decalVertexFile, err)
	}
	frag, err := shaderFS.ReadFile("shaders/" + decalFragmentFile)
	if err != nil {
		return ShaderSource{}, fmt.Errorf("falha ao ler %s embutido: %w", decalFragmentFile, err)
	}
	return ShaderSource{Vertex: string(vert), Fragment: string(frag)}, nil
}

// LoadShaderSource lê os shaders de um diretório. Com dir vazio usa os embutidos.
func LoadShaderSource(dir string) (ShaderSource, error) {
	if dir == "" {
		return DefaultShaderSource()
	}

	vert, err := os.ReadFile(filepath.Join(dir, decalVertexFile))
	if err != nil {
		return ShaderSource{}, fmt.Errorf("falha ao ler vertex shader: %w", err)
	}
	frag, err := os.ReadFile(filepath.Join(dir, decalFragmentFile))
	if err != nil {
		return ShaderSource{}, fmt.Errorf("falha ao ler fragment shader: %w", err)
	}
	return ShaderSource{Vertex: string(vert), Fragment: string(frag)}, nil
}
