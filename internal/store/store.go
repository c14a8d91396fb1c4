package store

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

// Store é o ponto único de acesso ao grafo de entidades do backend local.
// Toda operação executa um ciclo completo ler → migrar → (talvez) gravar,
// garantindo que o grafo retornado está sempre no schema atual, qualquer que
// seja a versão que produziu o blob persistido.
//
// Blob ausente ou corrompido nunca vira erro para o chamador: o Store se
// auto-recupera gerando o seed determinístico de novo (fail-open), e registra
// a recuperação no log para que ela seja observável.
type Store struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger

	// recomputeGrades liga a reconciliação de notas com a fórmula em toda
	// leitura (comportamento herdado do protótipo)
	recomputeGrades bool

	// Reseeds conta recuperações por reseed (blob ausente conta também)
	Reseeds int
}

// New cria um Store sobre o backend informado
func New(backend Backend, recomputeGrades bool, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger, recomputeGrades: recomputeGrades}
}

// Read retorna o grafo atual, migrado para o schema corrente.
// Nunca retorna erro de dados: ausência e corrupção disparam reseed.
func (s *Store) Read() *model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Mutate aplica fn sobre o grafo corrente e persiste o resultado por inteiro.
// A leitura, a mutação e a gravação acontecem sob o mesmo lock (um único
// escritor lógico por vez).
func (s *Store) Mutate(fn func(ds *model.Dataset)) *model.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	ds := s.read()
	fn(ds)
	s.write(ds)
	return ds
}

func (s *Store) read() *model.Dataset {
	raw, ok, err := s.backend.Load()
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("falha ao carregar blob, regenerando seed", zap.Error(err))
		}
		return s.reseed()
	}

	var ds model.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		s.logger.Warn("blob corrompido, regenerando seed", zap.Error(err))
		return s.reseed()
	}

	if migrate(&ds, s.recomputeGrades) {
		s.write(&ds)
	}
	return &ds
}

func (s *Store) reseed() *model.Dataset {
	s.Reseeds++
	ds := Seed()
	s.write(ds)
	return ds
}

// write serializa e grava o grafo inteiro incondicionalmente
func (s *Store) write(ds *model.Dataset) {
	raw, err := json.Marshal(ds)
	if err != nil {
		// o Dataset é serializável por construção; marshal não falha em prática
		s.logger.Error("falha ao serializar dataset", zap.Error(err))
		return
	}
	if err := s.backend.Save(raw); err != nil {
		s.logger.Error("falha ao persistir dataset", zap.Error(err))
	}
}
