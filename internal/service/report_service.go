package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// ReportService relatório de desempenho por matrícula
type ReportService interface {
	Performance(ctx context.Context) (*dto.ReportResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReportService cria o serviço de relatórios
func NewReportService(repo *repository.Repository, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, logger: logger}
}

// Performance calcula, para cada matrícula não cancelada, a média composta
// do aluno no curso e a situação correspondente, com totais por situação.
func (s *reportService) Performance(ctx context.Context) (*dto.ReportResponse, error) {
	joined, err := s.repo.Enrollment.ListJoined(ctx)
	if err != nil {
		s.logger.Error("falha ao listar matrículas para o relatório", zap.Error(err))
		return nil, err
	}

	// atividades por curso são reaproveitadas entre matrículas do mesmo curso
	activityCount := make(map[int]int)

	rows := make([]dto.ReportRow, 0, len(joined))
	var summary dto.ReportSummary

	for _, e := range joined {
		if e.Status == model.EnrollmentCancelada {
			continue
		}

		total, ok := activityCount[e.CourseID]
		if !ok {
			activities, err := s.repo.Academic.ActivitiesByCourse(ctx, e.CourseID)
			if err != nil {
				s.logger.Error("falha ao listar atividades para o relatório",
					zap.Int("courseId", e.CourseID), zap.Error(err))
				return nil, err
			}
			total = len(activities)
			activityCount[e.CourseID] = total
		}

		submissions, err := s.repo.Academic.SubmissionsByStudentCourse(ctx, e.StudentID, e.CourseID)
		if err != nil {
			s.logger.Error("falha ao listar entregas para o relatório",
				zap.Int("studentId", e.StudentID), zap.Error(err))
			return nil, err
		}
		delivered := 0
		for _, sub := range submissions {
			if sub.Entregue {
				delivered++
			}
		}

		grades, err := s.repo.Academic.GradesByStudentCourse(ctx, e.StudentID, e.CourseID)
		if err != nil {
			s.logger.Error("falha ao listar notas para o relatório",
				zap.Int("studentId", e.StudentID), zap.Error(err))
			return nil, err
		}

		_, media := compositeScore(grades, delivered, total)
		situacao := situacaoFromMedia(media)

		switch situacao {
		case SituacaoAprovado:
			summary.Aprovados++
		case SituacaoProvaFinal:
			summary.ProvaFinal++
		default:
			summary.Reprovados++
		}

		rows = append(rows, dto.ReportRow{
			Aluno:    e.Aluno,
			Curso:    e.Curso,
			Media:    media,
			Situacao: situacao,
		})
	}

	return &dto.ReportResponse{Rows: rows, Summary: summary}, nil
}
