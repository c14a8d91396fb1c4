// Package localstore implementa os repositórios sobre o blob JSON local
// com seed determinístico e migração na leitura (internal/store).
// Cada chamada dispara um ciclo completo ler → migrar → (talvez) gravar,
// sem camada de cache, exatamente o contrato do protótipo.
package localstore

import (
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

// New monta a agregação de repositórios sobre um Store e um backend separado
// para os usuários de autenticação (no protótipo eram chaves distintas do
// mesmo meio de persistência).
func New(st *store.Store, users store.Backend) *repository.Repository {
	return &repository.Repository{
		Student:    &studentRepo{st: st},
		Course:     &courseRepo{st: st},
		Enrollment: &enrollmentRepo{st: st},
		Turma:      &turmaRepo{st: st},
		Material:   &materialRepo{st: st},
		Academic:   &academicRepo{st: st},
		User:       newUserRepo(users),
	}
}
