package store

import (
	"errors"
	"os"
	"sync"
)

// Backend meio de persistência do blob serializado.
// Injetado no Store para que testes usem memória e o runtime use arquivo,
// nunca um global de pacote.
type Backend interface {
	// Load retorna o conteúdo do blob e se ele existe.
	Load() ([]byte, bool, error)
	// Save grava o blob por inteiro (sobrescrita total, sem diff).
	Save(data []byte) error
}

// ── Backend em arquivo ──

// FileBackend persiste o blob em um único arquivo JSON.
// O nome do arquivo carrega a versão informal do schema (sufixo "-v2");
// uma mudança de formato incompatível troca o nome e abandona o antigo.
type FileBackend struct {
	path string
}

// NewFileBackend cria um backend de arquivo no caminho informado
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load lê o arquivo; ausência não é erro
func (b *FileBackend) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Save sobrescreve o arquivo com o blob completo
func (b *FileBackend) Save(data []byte) error {
	return os.WriteFile(b.path, data, 0o644)
}

// ── Backend em memória (testes) ──

// MemoryBackend guarda o blob em memória; cada instância é um banco isolado
type MemoryBackend struct {
	mu    sync.Mutex
	data  []byte
	saved bool
	// Saves conta gravações, usado em testes de idempotência
	Saves int
}

// NewMemoryBackend cria um backend vazio
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// NewMemoryBackendWith cria um backend já populado com um blob
func NewMemoryBackendWith(data []byte) *MemoryBackend {
	return &MemoryBackend{data: data, saved: true}
}

// Load retorna o blob em memória
func (b *MemoryBackend) Load() ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.saved {
		return nil, false, nil
	}
	return b.data, true, nil
}

// Save substitui o blob em memória
func (b *MemoryBackend) Save(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	b.saved = true
	b.Saves++
	return nil
}
