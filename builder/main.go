package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Cores para o terminal (ANSI)
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
)

func main() {
	outDir := flag.String("out", "dist", "Diretório de saída")
	noWait := flag.Bool("no-wait", false, "Não esperar Enter ao terminar")
	flag.Parse()

	fmt.Println(ColorCyan + "╔══════════════════════════════════════╗" + ColorReset)
	fmt.Println(ColorCyan + "║     DecalProjector Native Builder    ║" + ColorReset)
	fmt.Println(ColorCyan + "╚══════════════════════════════════════╝" + ColorReset)

	start := time.Now()

	// 1. Configurar Ambiente
	setupEnvironment()

	// 2. Compilar Cliente (raylib e sqlite exigem CGO)
	exe := filepath.Join(*outDir, binaryName("DecalProjector"))
	ldflags := "-s -w"
	if runtime.GOOS == "windows" {
		ldflags += " -H=windowsgui"
	}
	if err := buildClient(exe, ldflags); err != nil {
		fatal(err, *noWait)
	}

	// 3. Copiar assets para junto do executável
	fmt.Println(ColorYellow + "\n[2/2] Copiando assets..." + ColorReset)
	n, err := copyTree("assets", filepath.Join(*outDir, "assets"))
	if err != nil {
		fatal(fmt.Errorf("falha ao copiar assets: %w", err), *noWait)
	}
	fmt.Printf(ColorGreen+"  - %d arquivos copiados"+ColorReset+"\n", n)

	fmt.Printf("\n"+ColorCyan+"Build finalizada com sucesso em %v!"+ColorReset+"\n", time.Since(start).Round(time.Second))
	fmt.Printf(ColorYellow+"Dica: execute %s de dentro de %s."+ColorReset+"\n", filepath.Base(exe), *outDir)

	if !*noWait {
		fmt.Println("\nPressione Enter para sair...")
		fmt.Scanln()
	}
}

func binaryName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

func setupEnvironment() {
	fmt.Println(ColorYellow + "\n[0/2] Configurando ambiente de compilação..." + ColorReset)

	// Adicionar MSYS2 ao PATH se estiver no Windows
	if runtime.GOOS == "windows" {
		msysPath := `C:\msys64\mingw64\bin`
		currentPath := os.Getenv("PATH")
		if !strings.Contains(currentPath, msysPath) {
			os.Setenv("PATH", msysPath+";"+currentPath)
			fmt.Printf("  - PATH atualizado: %s adicionado.\n", msysPath)
		}
		os.Setenv("CC", "gcc")
		fmt.Println("  - Compilador C: gcc (MSYS2)")
	}
	os.Setenv("CGO_ENABLED", "1")
}

func buildClient(output, ldflags string) error {
	fmt.Printf(ColorYellow + "\n[1/2] Compilando CLIENTE (CGO)..." + ColorReset + "\n")

	cmd := exec.Command("go", "build", "-ldflags", ldflags, "-o", output, "./cliente")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("falha ao compilar cliente: %w", err)
	}

	fmt.Printf(ColorGreen+"  - Cliente compilado com sucesso -> %s"+ColorReset+"\n", output)
	return nil
}

// copyTree copia src para dst recursivamente e retorna quantos arquivos copiou.
func copyTree(src, dst string) (int, error) {
	count := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		count++
		return nil
	})
	return count, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fatal(err error, noWait bool) {
	fmt.Printf("\n"+ColorRed+"[ERRO FATAL] %v"+ColorReset+"\n", err)
	if !noWait {
		fmt.Println("Pressione Enter para sair...")
		fmt.Scanln()
	}
	os.Exit(1)
}
