package reststore

import (
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// New monta os repositórios sobre o cliente HTTP. O backend externo não
// expõe usuários do backoffice; o campo User fica nulo e deve ser
// preenchido pelo chamador com um repositório local.
func New(client *Client) *repository.Repository {
	return &repository.Repository{
		Student:    &studentRepo{c: client},
		Course:     &courseRepo{c: client},
		Enrollment: &enrollmentRepo{c: client},
		Turma:      &turmaRepo{c: client},
		Material:   &materialRepo{c: client},
		Academic:   &academicRepo{c: client},
	}
}
