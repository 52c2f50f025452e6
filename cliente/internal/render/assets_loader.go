package render

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextureLibrary guarda as texturas de decal por nome, na ordem em que foram carregadas.
type TextureLibrary struct {
	Names    []string
	textures map[string]*rl.Texture2D
}

// NewTextureLibrary cria uma biblioteca vazia.
func NewTextureLibrary() *TextureLibrary {
	return &TextureLibrary{textures: make(map[string]*rl.Texture2D)}
}

// Load carrega a textura de path. Se o arquivo falhar, gera um xadrez no lugar
// para o decal continuar visível.
func (l *TextureLibrary) Load(name, path string) *rl.Texture2D {
	tex := rl.LoadTexture(path)
	if tex.ID != 0 {
		rl.GenTextureMipmaps(&tex)
		rl.SetTextureFilter(tex, rl.FilterTrilinear)
		log.Printf("[Textures] Textura carregada: %s", path)
	} else {
		log.Printf("[Textures] FALHA ao carregar textura: %s (usando xadrez)", path)
		img := rl.GenImageChecked(256, 256, 32, 32, rl.Gold, rl.NewColor(0, 0, 0, 0))
		tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
	}
	rl.SetTextureWrap(tex, rl.WrapRepeat)

	return l.add(name, tex)
}

func (l *TextureLibrary) add(name string, tex rl.Texture2D) *rl.Texture2D {
	if old, ok := l.textures[name]; ok {
		*old = tex
		return old
	}
	t := &tex
	l.textures[name] = t
	l.Names = append(l.Names, name)
	return t
}

// Get retorna a textura ou nil.
func (l *TextureLibrary) Get(name string) *rl.Texture2D {
	return l.textures[name]
}

// Next retorna o nome seguinte a current, em ciclo. Nome desconhecido volta ao primeiro.
func (l *TextureLibrary) Next(current string) string {
	if len(l.Names) == 0 {
		return ""
	}
	for i, n := range l.Names {
		if n == current {
			return l.Names[(i+1)%len(l.Names)]
		}
	}
	return l.Names[0]
}

// Unload libera todas as texturas. Decals que apontam para elas ficam inválidos.
func (l *TextureLibrary) Unload() {
	for _, t := range l.textures {
		if t.ID != 0 {
			rl.UnloadTexture(*t)
		}
	}
	l.textures = make(map[string]*rl.Texture2D)
	l.Names = nil
}
