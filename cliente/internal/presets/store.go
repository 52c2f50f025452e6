// Package presets persiste configurações de projetor em um banco SQLite.
package presets

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"DecalProjector/cliente/internal/decal"

	"github.com/go-gl/mathgl/mgl32"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound indica que não existe preset com o nome pedido.
var ErrNotFound = errors.New("preset não encontrado")

const CurrentFormatVersion = 1

// DecalPreset é o esquema de um projetor salvo.
type DecalPreset struct {
	Name    string `gorm:"primaryKey"`
	Texture string

	PosX, PosY, PosZ float32
	DirX, DirY, DirZ float32

	FOV  float32
	Near float32
	Far  float32

	Stretch     bool
	Scrolling   bool
	ScrollSpeed float32

	UpdatedAt time.Time
}

// StoreMetadata guarda pares chave/valor do próprio banco.
type StoreMetadata struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// Store acessa o banco de presets. Seguro para uso concorrente.
type Store struct {
	mu   sync.Mutex
	db   *gorm.DB
	path string
}

// Open abre (ou cria) o banco em path e roda as migrações.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("falha ao criar diretório de presets: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no SQLite: %w", err)
	}

	if err := db.AutoMigrate(&DecalPreset{}, &StoreMetadata{}); err != nil {
		return nil, fmt.Errorf("falha na migração do banco: %w", err)
	}
	db.Save(&StoreMetadata{Key: "FormatVersion", Value: fmt.Sprint(CurrentFormatVersion)})

	log.Printf("[Presets] Banco de presets aberto: %s", path)
	return &Store{db: db, path: path}, nil
}

// Save grava ou sobrescreve o preset.
func (s *Store) Save(p *DecalPreset) error {
	if p.Name == "" {
		return fmt.Errorf("preset sem nome")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return fmt.Errorf("banco de presets fechado")
	}

	if err := s.db.Save(p).Error; err != nil {
		log.Printf("[Presets] ERRO ao salvar preset %s: %v", p.Name, err)
		return err
	}
	return nil
}

// Load busca um preset pelo nome.
func (s *Store) Load(name string) (*DecalPreset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, fmt.Errorf("banco de presets fechado")
	}

	var p DecalPreset
	err := s.db.First(&p, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retorna os nomes em ordem alfabética.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, fmt.Errorf("banco de presets fechado")
	}

	var names []string
	err := s.db.Model(&DecalPreset{}).Order("name").Pluck("name", &names).Error
	return names, err
}

// Delete remove o preset. Remover um nome inexistente retorna ErrNotFound.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return fmt.Errorf("banco de presets fechado")
	}

	res := s.db.Delete(&DecalPreset{}, "name = ?", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return nil
}

// Close fecha a conexão. Chamadas seguintes são ignoradas.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	s.db = nil
	if err != nil {
		return err
	}
	log.Printf("[Presets] Banco fechado: %s", s.path)
	return sqlDB.Close()
}

// FromDecal captura o estado atual do projetor.
func FromDecal(name, texture string, d *decal.Decal) *DecalPreset {
	cam := d.Camera
	return &DecalPreset{
		Name:        name,
		Texture:     texture,
		PosX:        cam.Position.X(),
		PosY:        cam.Position.Y(),
		PosZ:        cam.Position.Z(),
		DirX:        cam.Direction.X(),
		DirY:        cam.Direction.Y(),
		DirZ:        cam.Direction.Z(),
		FOV:         cam.FieldOfView,
		Near:        cam.Near,
		Far:         cam.Far,
		Stretch:     d.Stretch,
		Scrolling:   d.Scrolling,
		ScrollSpeed: d.ScrollSpeed,
	}
}

// Position retorna a posição salva.
func (p *DecalPreset) Position() mgl32.Vec3 {
	return mgl32.Vec3{p.PosX, p.PosY, p.PosZ}
}

// Direction retorna a direção salva.
func (p *DecalPreset) Direction() mgl32.Vec3 {
	return mgl32.Vec3{p.DirX, p.DirY, p.DirZ}
}

// Apply copia o preset para o decal. A textura é resolvida por quem chama.
func (p *DecalPreset) Apply(d *decal.Decal) {
	cam := d.Camera
	cam.Position = p.Position()
	cam.LookAt(cam.Position.Add(p.Direction()))
	cam.FieldOfView = p.FOV
	cam.Near = p.Near
	cam.Far = p.Far
	cam.Update()

	d.Stretch = p.Stretch
	d.Scrolling = p.Scrolling
	d.ScrollSpeed = p.ScrollSpeed
}
