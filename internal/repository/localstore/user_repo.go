package localstore

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

// userRepo usuários de autenticação em um blob próprio, separado do dataset
// escolar (no protótipo, chave "auth.users.v1")
type userRepo struct {
	mu      sync.Mutex
	backend store.Backend
}

func newUserRepo(backend store.Backend) *userRepo {
	return &userRepo{backend: backend}
}

// NewUserRepository expõe o repositório de usuários isoladamente, para
// composição com backends que não gerenciam usuários (driver rest)
func NewUserRepository(backend store.Backend) repository.UserRepository {
	return newUserRepo(backend)
}

func (r *userRepo) load() []model.User {
	raw, ok, err := r.backend.Load()
	if err != nil || !ok {
		return nil
	}
	var users []model.User
	if err := json.Unmarshal(raw, &users); err != nil {
		// blob corrompido equivale a vazio (fail-open, igual ao dataset)
		return nil
	}
	// migração: registros antigos podem não ter role
	for i := range users {
		if users[i].Role == "" {
			users[i].Role = "aluno"
		}
	}
	return users
}

func (r *userRepo) save(users []model.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.backend.Save(raw)
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.load() {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := r.load()
	max := 0
	for _, existing := range users {
		if existing.ID > max {
			max = existing.ID
		}
	}
	u.ID = max + 1
	if u.Role == "" {
		u.Role = "aluno"
	}
	return r.save(append(users, *u))
}
