package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

func TestEnrollmentCreateComPadroes(t *testing.T) {
	svc := NewEnrollmentService(fixtureRepos(), nil, zap.NewNop())

	e, err := svc.Create(context.Background(), &dto.CreateEnrollmentRequest{StudentID: 2, CourseID: 1})
	if err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if e.Status != model.EnrollmentAtiva {
		t.Errorf("status padrão deve ser Ativa, veio %q", e.Status)
	}
	if e.DataMatricula == "" {
		t.Error("data da matrícula deve receber a data corrente")
	}
	if e.ID == 0 {
		t.Error("matrícula deve receber id")
	}
}

func TestEnrollmentCreateRejeitaParAtivoDuplicado(t *testing.T) {
	svc := NewEnrollmentService(fixtureRepos(), nil, zap.NewNop())

	// (1,1) já tem matrícula ativa na fixture
	_, err := svc.Create(context.Background(), &dto.CreateEnrollmentRequest{StudentID: 1, CourseID: 1})
	if !errors.Is(err, ErrEnrollmentDuplicate) {
		t.Fatalf("esperado ErrEnrollmentDuplicate, veio %v", err)
	}
}

func TestEnrollmentCreatePermiteNovoParAposCancelamento(t *testing.T) {
	repo := fixtureRepos()
	mock := repo.Enrollment.(*mockEnrollmentRepo)
	mock.enrollments[0].Status = model.EnrollmentCancelada

	svc := NewEnrollmentService(repo, nil, zap.NewNop())
	if _, err := svc.Create(context.Background(), &dto.CreateEnrollmentRequest{StudentID: 1, CourseID: 1}); err != nil {
		t.Fatalf("matrícula cancelada não deve bloquear nova matrícula: %v", err)
	}
}

func TestEnrollmentCreateValidaReferencias(t *testing.T) {
	svc := NewEnrollmentService(fixtureRepos(), nil, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateEnrollmentRequest{StudentID: 999, CourseID: 1}); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("aluno inexistente: esperado ErrStudentNotFound, veio %v", err)
	}
	if _, err := svc.Create(ctx, &dto.CreateEnrollmentRequest{StudentID: 1, CourseID: 999}); !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("curso inexistente: esperado ErrCourseNotFound, veio %v", err)
	}
}

func TestEnrollmentRemoveRetornaQuantidade(t *testing.T) {
	repo := fixtureRepos()
	mock := repo.Enrollment.(*mockEnrollmentRepo)
	// segunda matrícula do mesmo par, simulando duplicata herdada
	mock.enrollments = append(mock.enrollments, model.Enrollment{
		ID: 2, StudentID: 1, CourseID: 1, DataMatricula: "2024-03-01", Status: model.EnrollmentConcluida,
	})

	svc := NewEnrollmentService(repo, nil, zap.NewNop())
	removed, err := svc.RemoveByStudentCourse(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("RemoveByStudentCourse falhou: %v", err)
	}
	if removed != 2 {
		t.Fatalf("esperado 2 removidas, veio %d", removed)
	}
}

func TestEnrollmentRemoveParInexistente(t *testing.T) {
	svc := NewEnrollmentService(fixtureRepos(), nil, zap.NewNop())

	_, err := svc.RemoveByStudentCourse(context.Background(), 2, 2)
	if !errors.Is(err, ErrEnrollmentNotFound) {
		t.Fatalf("esperado ErrEnrollmentNotFound, veio %v", err)
	}
}
