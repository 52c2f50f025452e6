package app

import (
	"fmt"
	"log"

	"DecalProjector/cliente/internal/assets"
	"DecalProjector/cliente/internal/camera"
	"DecalProjector/cliente/internal/decal"
	"DecalProjector/cliente/internal/presets"
	"DecalProjector/cliente/internal/render"
	"DecalProjector/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// projector é um decal da cena junto com o nome da textura que ele usa.
type projector struct {
	Name       string
	TextureKey string
	Decal      *decal.Decal
}

// App é a aplicação de demonstração do DecalProjector.
type App struct {
	Config *config.Config

	// Câmera orbital e a Perspective sincronizada com ela
	Cam  *camera.CameraController
	view *camera.Perspective

	assets   *assets.Manager
	textures *render.TextureLibrary
	scene    *render.Scene
	env      *render.Environment

	device        *render.RaylibDevice
	decalRenderer *render.DecalRenderer
	debug         *render.DebugRenderer

	projectors []*projector
	active     int

	presets *presets.Store

	// Informações de debug
	frameCount int
	lastErr    string
	status     string
	statusTime float64
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{Config: cfg}
}

// Run abre a janela, carrega a cena e roda o loop principal.
// Retorna erro se algum recurso obrigatório (shader, manifesto) falhar.
func (a *App) Run() error {
	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.SetTraceLogCallback(render.ForwardTraceLog)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal
	defer rl.CloseWindow()

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)

	log.Println("[DecalProjector] Janela inicializada com sucesso")
	log.Printf("[DecalProjector] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	if err := a.init(); err != nil {
		a.shutdown()
		return err
	}

	// Loop principal
	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	return nil
}

// init carrega assets, cena, shader e presets. Requer a janela aberta.
func (a *App) init() error {
	a.Cam = camera.New(a.Config.FOV)
	a.Cam.MoveSpeed = a.Config.CameraSpeed
	a.Cam.ZoomSpeed = a.Config.ZoomSpeed
	a.view = camera.NewPerspective(a.Config.FOV, float32(a.Config.WindowWidth), float32(a.Config.WindowHeight))

	manager, err := assets.NewManager(a.Config.AssetsDir)
	if err != nil {
		return fmt.Errorf("falha ao carregar cena: %w", err)
	}
	a.assets = manager

	a.textures = render.NewTextureLibrary()
	for _, key := range manager.TextureKeys() {
		path, _ := manager.TexturePath(key)
		a.textures.Load(key, path)
	}

	a.scene = render.NewDemoScene()
	a.env = newEnvironment(a.Config)
	a.debug = render.NewDebugRenderer()
	a.debug.RenderFrustumAsLines = a.Config.FrustumAsLines

	src, err := render.LoadShaderSource(a.Config.ShaderDir)
	if err != nil {
		return err
	}
	a.device = render.NewRaylibDevice()
	a.decalRenderer, err = render.NewDecalRenderer(a.device, src)
	if err != nil {
		return err
	}

	def := assets.DecalEntry{FOV: a.Config.DecalFOV, Near: a.Config.DecalNear, Far: a.Config.DecalFar}
	for _, entry := range manager.Decals() {
		a.projectors = append(a.projectors, a.newProjector(entry, def))
	}
	log.Printf("[App] %d projetores carregados", len(a.projectors))

	// Câmera começa olhando para o chão sob o primeiro projetor
	if p := a.activeProjector(); p != nil {
		pos := p.Decal.Camera.Position
		a.Cam.SetTarget(rl.Vector3{X: pos.X(), Y: 0, Z: pos.Z()})
	}

	// Presets são opcionais: sem banco a demo continua, só sem F5/F9.
	store, err := presets.Open(a.Config.PresetsDB)
	if err != nil {
		log.Printf("[App] Presets desativados: %v", err)
	} else {
		a.presets = store
	}

	return nil
}

func (a *App) newProjector(entry assets.DecalEntry, def assets.DecalEntry) *projector {
	d := decal.New(entry.NewProjector(def), a.textures.Get(entry.Texture))
	d.Stretch = entry.Stretch
	d.Scrolling = entry.Scrolling
	d.ScrollSpeed = entry.ScrollSpeed
	if d.ScrollSpeed == 0 {
		d.ScrollSpeed = a.Config.DecalScrollSpeed
	}
	return &projector{Name: entry.Name, TextureKey: entry.Texture, Decal: d}
}

func newEnvironment(cfg *config.Config) *render.Environment {
	dir := mgl32.Vec3(cfg.LightDirection)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, -1, 0}
	}
	amb := cfg.AmbientColor
	return render.NewEnvironment(dir.Normalize(), rl.NewColor(amb[0], amb[1], amb[2], 255))
}

// activeProjector retorna o projetor controlado pelo teclado.
func (a *App) activeProjector() *projector {
	if len(a.projectors) == 0 {
		return nil
	}
	return a.projectors[a.active%len(a.projectors)]
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++
	dt := rl.GetFrameTime()

	a.updateCamera(dt)
	a.updateInput()
	a.updateProjector(dt)
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	if a.decalRenderer != nil {
		a.decalRenderer.Dispose()
	}
	if a.textures != nil {
		a.textures.Unload()
	}
	if a.scene != nil {
		a.scene.Unload()
	}
	if a.presets != nil {
		if err := a.presets.Close(); err != nil {
			log.Printf("[App] Erro ao fechar presets: %v", err)
		}
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[DecalProjector] Erro ao salvar configurações: %v", err)
	}
}
