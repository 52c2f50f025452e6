package main

import (
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"DecalProjector/cliente/internal/app"
	"DecalProjector/shared/config"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	// Flags de linha de comando
	fullscreen := flag.Bool("fullscreen", false, "Iniciar em tela cheia")
	debug := flag.Bool("debug", false, "Mostrar informações de debug")
	width := flag.Int("width", 0, "Largura da janela")
	height := flag.Int("height", 0, "Altura da janela")
	shaders := flag.String("shaders", "", "Diretório com os shaders de decal (padrão: embutidos)")
	assetsDir := flag.String("assets", "", "Diretório com o scene.json")
	flag.Parse()

	// Configurar Log em Arquivo (e no terminal)
	f, err := os.OpenFile("debug_decal.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err == nil {
		defer f.Close()
		log.SetOutput(io.MultiWriter(os.Stderr, f))
		log.Println("--- INICIANDO DECAL PROJECTOR ---")
	}

	log.SetFlags(log.Ltime | log.Lshortfile)
	log.Println("╔══════════════════════════════════════╗")
	log.Println("║       DecalProjector v0.1.0          ║")
	log.Println("║   Projeção de decals em tempo real   ║")
	log.Println("╚══════════════════════════════════════╝")

	// Carregar configurações
	cfg := config.Load()

	// Aplicar flags de linha de comando (sobrescrevem o config salvo)
	if *fullscreen {
		cfg.Fullscreen = true
	}
	if *debug {
		cfg.ShowDebugInfo = true
	}
	if *width > 0 {
		cfg.WindowWidth = int32(*width)
	}
	if *height > 0 {
		cfg.WindowHeight = int32(*height)
	}
	if *shaders != "" {
		cfg.ShaderDir = *shaders
	}
	if *assetsDir != "" {
		cfg.AssetsDir = *assetsDir
	}

	// Criar e rodar a aplicação
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("[DecalProjector] Falha ao iniciar: %v", err)
	}
}
