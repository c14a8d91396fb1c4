package service

import (
	"context"
	"math"
	"testing"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

func TestPerformanceCalculaMediaESituacao(t *testing.T) {
	svc := NewReportService(fixtureRepos(), zap.NewNop())

	report, err := svc.Performance(context.Background())
	if err != nil {
		t.Fatalf("Performance falhou: %v", err)
	}
	if len(report.Rows) != 1 {
		t.Fatalf("esperado 1 linha, veio %d", len(report.Rows))
	}

	row := report.Rows[0]
	if row.Aluno != "Ana Souza" || row.Curso != "Matemática Básica" {
		t.Errorf("linha com nomes errados: %q / %q", row.Aluno, row.Curso)
	}
	if math.Abs(row.Media-6.9) > 1e-9 {
		t.Errorf("média: esperado 6.9, veio %v", row.Media)
	}
	if row.Situacao != SituacaoProvaFinal {
		t.Errorf("situação: esperado %q, veio %q", SituacaoProvaFinal, row.Situacao)
	}
	if report.Summary.ProvaFinal != 1 || report.Summary.Aprovados != 0 || report.Summary.Reprovados != 0 {
		t.Errorf("resumo inconsistente: %+v", report.Summary)
	}
}

func TestPerformanceIgnoraCanceladas(t *testing.T) {
	repo := fixtureRepos()
	mock := repo.Enrollment.(*mockEnrollmentRepo)
	mock.enrollments[0].Status = model.EnrollmentCancelada

	svc := NewReportService(repo, zap.NewNop())
	report, err := svc.Performance(context.Background())
	if err != nil {
		t.Fatalf("Performance falhou: %v", err)
	}
	if len(report.Rows) != 0 {
		t.Fatalf("matrícula cancelada não entra no relatório, veio %d linhas", len(report.Rows))
	}
}

func TestPerformanceMatriculaSemDadosReprova(t *testing.T) {
	repo := fixtureRepos()
	mock := repo.Enrollment.(*mockEnrollmentRepo)
	// aluno 2 no curso 2: sem atividades e sem notas, média composta 0
	mock.enrollments = append(mock.enrollments, model.Enrollment{
		ID: 2, StudentID: 2, CourseID: 2, DataMatricula: "2024-02-01", Status: model.EnrollmentAtiva,
	})

	svc := NewReportService(repo, zap.NewNop())
	report, err := svc.Performance(context.Background())
	if err != nil {
		t.Fatalf("Performance falhou: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("esperado 2 linhas, veio %d", len(report.Rows))
	}

	var found bool
	for _, row := range report.Rows {
		if row.Aluno == "Bruno Lima" {
			found = true
			if row.Media != 0 || row.Situacao != SituacaoReprovado {
				t.Errorf("sem dados a média é 0 e a situação Reprovado, veio %v / %q", row.Media, row.Situacao)
			}
		}
	}
	if !found {
		t.Fatal("linha do segundo aluno não encontrada")
	}
	if report.Summary.Reprovados != 1 || report.Summary.ProvaFinal != 1 {
		t.Errorf("resumo inconsistente: %+v", report.Summary)
	}
}
