package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

// ── Erros de negócio de cursos ──

var ErrCourseNotFound = errors.New("curso não encontrado")

// CourseService operações sobre cursos
type CourseService interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error)
	Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error)
	Delete(ctx context.Context, id int) error
}

type courseService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewCourseService cria o serviço de cursos
func NewCourseService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, cache: cache, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]model.Course, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar cursos", zap.Error(err))
		return nil, err
	}
	return courses, nil
}

func (s *courseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("falha ao buscar curso", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*model.Course, error) {
	status := req.Status
	if status == "" {
		status = model.CourseAtivo
	}

	course := &model.Course{
		Codigo:       req.Codigo,
		Nome:         req.Nome,
		CargaHoraria: req.CargaHoraria,
		Status:       status,
		Descricao:    req.Descricao,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("falha ao criar curso", zap.Error(err))
		return nil, err
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id int, req *dto.UpdateCourseRequest) (*model.Course, error) {
	course, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Codigo != nil {
		course.Codigo = *req.Codigo
	}
	if req.Nome != nil {
		course.Nome = *req.Nome
	}
	if req.CargaHoraria != nil {
		course.CargaHoraria = *req.CargaHoraria
	}
	if req.Status != nil {
		course.Status = *req.Status
	}
	if req.Descricao != nil {
		course.Descricao = *req.Descricao
	}

	if err := s.repo.Course.Update(ctx, course); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("falha ao atualizar curso", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		s.logger.Error("falha ao excluir curso", zap.Int("id", id), zap.Error(err))
		return err
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return nil
}
