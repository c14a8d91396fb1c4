package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// ── Erros de negócio de exportação e importação ──

var (
	ErrImportInvalidCSV   = errors.New("arquivo CSV inválido: esperado cabeçalho nome,cpf,dataNasc,celular")
	ErrCalendarNoActivity = errors.New("curso sem atividades para exportar")
)

// ExportService exportações (CSV, Excel, iCalendar) e importação de alunos
type ExportService interface {
	StudentsCSV(ctx context.Context) (*bytes.Buffer, string, error)
	StudentsXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	EnrollmentsCSV(ctx context.Context) (*bytes.Buffer, string, error)
	EnrollmentsXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// CourseCalendar exporta as atividades do curso como eventos de dia
	// inteiro em um arquivo .ics
	CourseCalendar(ctx context.Context, courseID int) (*bytes.Buffer, string, error)
	// ImportStudentsCSV cadastra alunos em lote e retorna quantos foram criados
	ImportStudentsCSV(ctx context.Context, r io.Reader) (int, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService cria o serviço de exportação
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

var studentHeader = []string{"nome", "cpf", "dataNasc", "celular"}

func (s *exportService) StudentsCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar alunos para exportação", zap.Error(err))
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(append([]string{"id"}, studentHeader...))
	for _, st := range students {
		_ = w.Write([]string{
			fmt.Sprintf("%d", st.ID), st.Nome, st.CPF, st.DataNasc, st.Celular,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return &buf, "alunos.csv", nil
}

func (s *exportService) StudentsXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar alunos para exportação", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Alunos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nome", "CPF", "Data de Nascimento", "Celular"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, st := range students {
		values := []interface{}{st.ID, st.Nome, st.CPF, st.DataNasc, st.Celular}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("falha ao gerar planilha de alunos", zap.Error(err))
		return nil, "", err
	}
	return buf, "alunos.xlsx", nil
}

func (s *exportService) EnrollmentsCSV(ctx context.Context) (*bytes.Buffer, string, error) {
	joined, err := s.repo.Enrollment.ListJoined(ctx)
	if err != nil {
		s.logger.Error("falha ao listar matrículas para exportação", zap.Error(err))
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "aluno", "curso", "dataMatricula", "status"})
	for _, e := range joined {
		_ = w.Write([]string{
			fmt.Sprintf("%d", e.ID), e.Aluno, e.Curso, e.DataMatricula, e.Status,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return &buf, "matriculas.csv", nil
}

func (s *exportService) EnrollmentsXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	joined, err := s.repo.Enrollment.ListJoined(ctx)
	if err != nil {
		s.logger.Error("falha ao listar matrículas para exportação", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const sheet = "Matrículas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Aluno", "Curso", "Data da Matrícula", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, e := range joined {
		values := []interface{}{e.ID, e.Aluno, e.Curso, e.DataMatricula, e.Status}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("falha ao gerar planilha de matrículas", zap.Error(err))
		return nil, "", err
	}
	return buf, "matriculas.xlsx", nil
}

func (s *exportService) CourseCalendar(ctx context.Context, courseID int) (*bytes.Buffer, string, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrCourseNotFound
		}
		return nil, "", err
	}

	activities, err := s.repo.Academic.ActivitiesByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("falha ao listar atividades para o calendário", zap.Int("courseId", courseID), zap.Error(err))
		return nil, "", err
	}
	if len(activities) == 0 {
		return nil, "", ErrCalendarNoActivity
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//escola-admin//backoffice//PT")
	cal.SetName(course.Nome)

	now := time.Now().UTC()
	for _, a := range activities {
		prazo, err := time.Parse("2006-01-02", a.Prazo)
		if err != nil {
			s.logger.Warn("atividade com prazo inválido ignorada no calendário",
				zap.Int("activityId", a.ID), zap.String("prazo", a.Prazo))
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("atividade-%d@escola-admin", a.ID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(prazo)
		event.SetAllDayEndAt(prazo.AddDate(0, 0, 1))
		event.SetSummary(a.Titulo)
		event.SetDescription(fmt.Sprintf("Prazo da atividade do curso %s", course.Nome))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, fmt.Sprintf("curso-%d-atividades.ics", courseID), nil
}

// ImportStudentsCSV lê o CSV linha a linha e cadastra cada aluno. A primeira
// linha deve ser o cabeçalho nome,cpf,dataNasc,celular; linhas vazias são
// ignoradas. A importação para no primeiro erro de persistência.
func (s *exportService) ImportStudentsCSV(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, ErrImportInvalidCSV
	}
	if len(header) < len(studentHeader) {
		return 0, ErrImportInvalidCSV
	}
	for i, want := range studentHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return 0, ErrImportInvalidCSV
		}
	}

	created := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return created, ErrImportInvalidCSV
		}
		if len(record) < len(studentHeader) {
			return created, ErrImportInvalidCSV
		}
		if strings.TrimSpace(record[0]) == "" {
			continue
		}

		student := &model.Student{
			Nome:     strings.TrimSpace(record[0]),
			CPF:      strings.TrimSpace(record[1]),
			DataNasc: strings.TrimSpace(record[2]),
			Celular:  strings.TrimSpace(record[3]),
		}
		if err := s.repo.Student.Create(ctx, student); err != nil {
			s.logger.Error("falha ao importar aluno", zap.String("nome", student.Nome), zap.Error(err))
			return created, err
		}
		created++
	}
	return created, nil
}
