package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// ── Erros de negócio acadêmicos ──

var (
	ErrActivityNotFound   = errors.New("atividade não encontrada")
	ErrSubmissionNotFound = errors.New("entrega não encontrada")
	ErrGradeNotFound      = errors.New("nota não encontrada")
)

// Situações possíveis de um aluno em um curso, derivadas da média composta
const (
	SituacaoAprovado   = "Aprovado"
	SituacaoProvaFinal = "Prova Final"
	SituacaoReprovado  = "Reprovado"
)

// AcademicService atividades, entregas, notas e progresso do aluno
type AcademicService interface {
	ActivitiesByCourse(ctx context.Context, courseID int) ([]model.Activity, error)
	CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*model.Activity, error)
	SetSubmission(ctx context.Context, req *dto.SetSubmissionRequest) error
	UpdateGrade(ctx context.Context, gradeID, valor int) error
	Progress(ctx context.Context, studentID, courseID int) (*dto.ProgressResponse, error)
}

type academicService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAcademicService cria o serviço acadêmico
func NewAcademicService(repo *repository.Repository, logger *zap.Logger) AcademicService {
	return &academicService{repo: repo, logger: logger}
}

func (s *academicService) ActivitiesByCourse(ctx context.Context, courseID int) ([]model.Activity, error) {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	activities, err := s.repo.Academic.ActivitiesByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("falha ao listar atividades", zap.Int("courseId", courseID), zap.Error(err))
		return nil, err
	}
	return activities, nil
}

func (s *academicService) CreateActivity(ctx context.Context, req *dto.CreateActivityRequest) (*model.Activity, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	activity := &model.Activity{
		CourseID: req.CourseID,
		Titulo:   req.Titulo,
		Prazo:    req.Prazo,
	}
	if err := s.repo.Academic.CreateActivity(ctx, activity); err != nil {
		s.logger.Error("falha ao criar atividade", zap.Error(err))
		return nil, err
	}
	return activity, nil
}

func (s *academicService) SetSubmission(ctx context.Context, req *dto.SetSubmissionRequest) error {
	err := s.repo.Academic.SetSubmissionEntregue(ctx, req.ActivityID, req.StudentID, req.Entregue)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSubmissionNotFound
		}
		s.logger.Error("falha ao marcar entrega",
			zap.Int("activityId", req.ActivityID), zap.Int("studentId", req.StudentID), zap.Error(err))
		return err
	}
	return nil
}

func (s *academicService) UpdateGrade(ctx context.Context, gradeID, valor int) error {
	if err := s.repo.Academic.UpdateGradeValor(ctx, gradeID, valor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrGradeNotFound
		}
		s.logger.Error("falha ao atualizar nota", zap.Int("gradeId", gradeID), zap.Error(err))
		return err
	}
	return nil
}

// Progress consolida notas e entregas de um aluno em um curso e calcula a
// média composta: notas pesam 70% e entregas 30%, na escala 0..10.
func (s *academicService) Progress(ctx context.Context, studentID, courseID int) (*dto.ProgressResponse, error) {
	if _, err := s.repo.Student.GetByID(ctx, studentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	activities, err := s.repo.Academic.ActivitiesByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("falha ao listar atividades", zap.Int("courseId", courseID), zap.Error(err))
		return nil, err
	}
	submissions, err := s.repo.Academic.SubmissionsByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		s.logger.Error("falha ao listar entregas", zap.Int("studentId", studentID), zap.Error(err))
		return nil, err
	}
	grades, err := s.repo.Academic.GradesByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		s.logger.Error("falha ao listar notas", zap.Int("studentId", studentID), zap.Error(err))
		return nil, err
	}

	byActivity := make(map[int]model.Activity, len(activities))
	for _, a := range activities {
		byActivity[a.ID] = a
	}

	details := make([]dto.SubmissionDetail, 0, len(submissions))
	delivered := 0
	for _, sub := range submissions {
		if sub.Entregue {
			delivered++
		}
		a := byActivity[sub.ActivityID]
		details = append(details, dto.SubmissionDetail{
			ActivitySubmission: sub,
			Titulo:             a.Titulo,
			Prazo:              a.Prazo,
		})
	}

	gradeAvg, composite := compositeScore(grades, delivered, len(activities))

	return &dto.ProgressResponse{
		StudentID:      studentID,
		CourseID:       courseID,
		Grades:         grades,
		Submissions:    details,
		Delivered:      delivered,
		TotalActivity:  len(activities),
		GradeAverage:   gradeAvg,
		CompositeScore: composite,
		Situacao:       situacaoFromMedia(composite),
	}, nil
}

// compositeScore média das notas (0..100) e média composta (0..10):
// notas normalizadas pesam 7 pontos e a razão de entregas pesa 3.
// Resultado arredondado a uma casa decimal.
func compositeScore(grades []model.Grade, delivered, totalActivities int) (gradeAvg, composite float64) {
	if len(grades) > 0 {
		sum := 0
		for _, g := range grades {
			sum += g.Valor
		}
		gradeAvg = float64(sum) / float64(len(grades))
	}

	ratio := 0.0
	if totalActivities > 0 {
		ratio = float64(delivered) / float64(totalActivities)
	}

	composite = gradeAvg/100*7 + ratio*3
	composite = math.Round(composite*10) / 10
	return gradeAvg, composite
}

// situacaoFromMedia classifica a média composta: 7 ou mais aprova,
// acima de 4 vai para prova final, o restante reprova
func situacaoFromMedia(media float64) string {
	switch {
	case media >= 7:
		return SituacaoAprovado
	case media > 4:
		return SituacaoProvaFinal
	default:
		return SituacaoReprovado
	}
}
