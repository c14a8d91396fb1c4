package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

// ── Erros de negócio de matrículas ──

var (
	ErrEnrollmentNotFound  = errors.New("matrícula não encontrada")
	ErrEnrollmentDuplicate = errors.New("aluno já possui matrícula ativa neste curso")
)

// EnrollmentService operações sobre matrículas
type EnrollmentService interface {
	ListJoined(ctx context.Context) ([]repository.EnrollmentJoined, error)
	Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*model.Enrollment, error)
	// RemoveByStudentCourse remove todas as matrículas do par e retorna
	// quantas foram removidas; zero removidas é ErrEnrollmentNotFound
	RemoveByStudentCourse(ctx context.Context, studentID, courseID int) (int, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)
}

type enrollmentService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewEnrollmentService cria o serviço de matrículas
func NewEnrollmentService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) EnrollmentService {
	return &enrollmentService{repo: repo, cache: cache, logger: logger}
}

func (s *enrollmentService) ListJoined(ctx context.Context) ([]repository.EnrollmentJoined, error) {
	joined, err := s.repo.Enrollment.ListJoined(ctx)
	if err != nil {
		s.logger.Error("falha ao listar matrículas", zap.Error(err))
		return nil, err
	}
	return joined, nil
}

func (s *enrollmentService) Create(ctx context.Context, req *dto.CreateEnrollmentRequest) (*model.Enrollment, error) {
	if _, err := s.repo.Student.GetByID(ctx, req.StudentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	// rejeita matrícula ativa duplicada para o mesmo par (aluno, curso)
	existing, err := s.repo.Enrollment.List(ctx)
	if err != nil {
		s.logger.Error("falha ao verificar matrículas existentes", zap.Error(err))
		return nil, err
	}
	for _, e := range existing {
		if e.StudentID == req.StudentID && e.CourseID == req.CourseID && e.Status == model.EnrollmentAtiva {
			return nil, ErrEnrollmentDuplicate
		}
	}

	dataMatricula := req.DataMatricula
	if dataMatricula == "" {
		dataMatricula = time.Now().Format("2006-01-02")
	}
	status := req.Status
	if status == "" {
		status = model.EnrollmentAtiva
	}

	enrollment := &model.Enrollment{
		StudentID:     req.StudentID,
		CourseID:      req.CourseID,
		DataMatricula: dataMatricula,
		Status:        status,
	}
	if err := s.repo.Enrollment.Create(ctx, enrollment); err != nil {
		s.logger.Error("falha ao criar matrícula", zap.Error(err))
		return nil, err
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return enrollment, nil
}

func (s *enrollmentService) RemoveByStudentCourse(ctx context.Context, studentID, courseID int) (int, error) {
	removed, err := s.repo.Enrollment.RemoveByStudentCourse(ctx, studentID, courseID)
	if err != nil {
		s.logger.Error("falha ao remover matrículas",
			zap.Int("studentId", studentID), zap.Int("courseId", courseID), zap.Error(err))
		return removed, err
	}
	if removed == 0 {
		return 0, ErrEnrollmentNotFound
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return removed, nil
}

func (s *enrollmentService) CountByCourse(ctx context.Context, courseID int) (int, error) {
	count, err := s.repo.Enrollment.CountByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("falha ao contar matrículas do curso", zap.Int("courseId", courseID), zap.Error(err))
		return 0, err
	}
	return count, nil
}
