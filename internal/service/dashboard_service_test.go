package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
)

func TestDashboardSemRedisConsultaDireta(t *testing.T) {
	svc := NewDashboardService(&config.Config{}, fixtureRepos(), nil, zap.NewNop())

	resp, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard falhou: %v", err)
	}

	if resp.Counts.TotalStudents != 2 {
		t.Errorf("alunos: esperado 2, veio %d", resp.Counts.TotalStudents)
	}
	if resp.Counts.TotalCourses != 2 {
		t.Errorf("cursos: esperado 2, veio %d", resp.Counts.TotalCourses)
	}
	if resp.Counts.ActiveEnrollments != 1 {
		t.Errorf("matrículas ativas: esperado 1, veio %d", resp.Counts.ActiveEnrollments)
	}

	if len(resp.StudentsPerCourse) != 2 {
		t.Fatalf("esperado 2 cursos no gráfico, veio %d", len(resp.StudentsPerCourse))
	}
	if resp.StudentsPerCourse[0].Curso != "Matemática Básica" || resp.StudentsPerCourse[0].Alunos != 1 {
		t.Errorf("primeira barra inesperada: %+v", resp.StudentsPerCourse[0])
	}
	if resp.StudentsPerCourse[1].Alunos != 0 {
		t.Errorf("curso sem matrículas deve aparecer com zero, veio %d", resp.StudentsPerCourse[1].Alunos)
	}
}
