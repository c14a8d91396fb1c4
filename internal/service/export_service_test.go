package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestStudentsCSVFormato(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	buf, filename, err := svc.StudentsCSV(context.Background())
	if err != nil {
		t.Fatalf("StudentsCSV falhou: %v", err)
	}
	if filename != "alunos.csv" {
		t.Errorf("nome do arquivo: esperado alunos.csv, veio %q", filename)
	}

	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("CSV gerado é inválido: %v", err)
	}
	// cabeçalho + 2 alunos da fixture
	if len(records) != 3 {
		t.Fatalf("esperado 3 linhas, veio %d", len(records))
	}
	if records[0][0] != "id" || records[0][1] != "nome" {
		t.Errorf("cabeçalho inesperado: %v", records[0])
	}
	if records[1][1] != "Ana Souza" {
		t.Errorf("primeira linha deve ser Ana Souza, veio %q", records[1][1])
	}
}

func TestEnrollmentsCSVUsaNomesDecorados(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	buf, _, err := svc.EnrollmentsCSV(context.Background())
	if err != nil {
		t.Fatalf("EnrollmentsCSV falhou: %v", err)
	}

	records, err := csv.NewReader(buf).ReadAll()
	if err != nil {
		t.Fatalf("CSV gerado é inválido: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("esperado cabeçalho + 1 matrícula, veio %d linhas", len(records))
	}
	if records[1][1] != "Ana Souza" || records[1][2] != "Matemática Básica" {
		t.Errorf("matrícula deve sair com nomes de aluno e curso, veio %v", records[1])
	}
}

func TestStudentsXLSXGeraPlanilha(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	buf, filename, err := svc.StudentsXLSX(context.Background())
	if err != nil {
		t.Fatalf("StudentsXLSX falhou: %v", err)
	}
	if filename != "alunos.xlsx" {
		t.Errorf("nome do arquivo: esperado alunos.xlsx, veio %q", filename)
	}
	if buf.Len() == 0 {
		t.Fatal("planilha vazia")
	}
	// arquivos xlsx são pacotes zip
	if !strings.HasPrefix(buf.String(), "PK") {
		t.Fatal("conteúdo não parece um xlsx")
	}
}

func TestCourseCalendarGeraEventos(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	buf, filename, err := svc.CourseCalendar(context.Background(), 1)
	if err != nil {
		t.Fatalf("CourseCalendar falhou: %v", err)
	}
	if filename != "curso-1-atividades.ics" {
		t.Errorf("nome do arquivo: %q", filename)
	}

	ics := buf.String()
	if !strings.Contains(ics, "BEGIN:VCALENDAR") {
		t.Fatal("saída não é um calendário iCalendar")
	}
	// 3 atividades da fixture, todas com prazo válido
	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("esperado 3 eventos, veio %d", got)
	}
	if !strings.Contains(ics, "SUMMARY:Lista 1") {
		t.Error("evento deve levar o título da atividade")
	}
}

func TestCourseCalendarSemAtividades(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	// curso 2 não tem atividades na fixture
	_, _, err := svc.CourseCalendar(context.Background(), 2)
	if !errors.Is(err, ErrCalendarNoActivity) {
		t.Fatalf("esperado ErrCalendarNoActivity, veio %v", err)
	}
}

func TestCourseCalendarCursoInexistente(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	_, _, err := svc.CourseCalendar(context.Background(), 999)
	if !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("esperado ErrCourseNotFound, veio %v", err)
	}
}

func TestImportStudentsCSVCadastraEmLote(t *testing.T) {
	repo := fixtureRepos()
	svc := NewExportService(repo, zap.NewNop())

	payload := strings.Join([]string{
		"nome,cpf,dataNasc,celular",
		"Eduardo Reis,003,1999-03-03,11999990003",
		"Fernanda Melo,004,1998-04-04,11999990004",
	}, "\n")

	created, err := svc.ImportStudentsCSV(context.Background(), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportStudentsCSV falhou: %v", err)
	}
	if created != 2 {
		t.Fatalf("esperado 2 criados, veio %d", created)
	}

	students, _ := repo.Student.List(context.Background())
	if len(students) != 4 {
		t.Fatalf("esperado 4 alunos após a importação, veio %d", len(students))
	}
}

func TestImportStudentsCSVIgnoraLinhasSemNome(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	payload := strings.Join([]string{
		"nome,cpf,dataNasc,celular",
		"Eduardo Reis,003,1999-03-03,11999990003",
		",,,",
	}, "\n")

	created, err := svc.ImportStudentsCSV(context.Background(), strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportStudentsCSV falhou: %v", err)
	}
	if created != 1 {
		t.Fatalf("linha sem nome deve ser ignorada: esperado 1, veio %d", created)
	}
}

func TestImportStudentsCSVCabecalhoInvalido(t *testing.T) {
	svc := NewExportService(fixtureRepos(), zap.NewNop())

	payload := "id,nome,email\n1,Fulano,f@x.com\n"
	_, err := svc.ImportStudentsCSV(context.Background(), strings.NewReader(payload))
	if !errors.Is(err, ErrImportInvalidCSV) {
		t.Fatalf("esperado ErrImportInvalidCSV, veio %v", err)
	}
}
