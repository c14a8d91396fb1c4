// Package gormstore implementa os repositórios sobre PostgreSQL via GORM.
// Os ids das entidades de domínio continuam sendo atribuídos pela aplicação
// (max existente + 1), mantendo a semântica de monotonicidade do backend
// local; apenas a tabela de usuários usa sequence do banco.
package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// New monta a agregação de repositórios sobre uma conexão GORM
func New(db *gorm.DB) *repository.Repository {
	return &repository.Repository{
		Student:    &studentRepo{db: db},
		Course:     &courseRepo{db: db},
		Enrollment: &enrollmentRepo{db: db},
		Turma:      &turmaRepo{db: db},
		Material:   &materialRepo{db: db},
		Academic:   &academicRepo{db: db},
		User:       &userRepo{db: db},
	}
}

// translate converte erros do GORM para os sentinelas do pacote repository
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	return err
}

// nextID próximo id de uma tabela (max + 1)
func nextID(db *gorm.DB, table string) (int, error) {
	var max int
	err := db.Table(table).Select("COALESCE(MAX(id), 0)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}
