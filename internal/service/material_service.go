package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// ── Erros de negócio de materiais ──

var ErrMaterialNotFound = errors.New("material não encontrado")

// MaterialService operações sobre materiais de estudo
type MaterialService interface {
	ListByCourse(ctx context.Context, courseID int) ([]model.Material, error)
	Create(ctx context.Context, req *dto.CreateMaterialRequest) (*model.Material, error)
	Delete(ctx context.Context, id int) error
}

type materialService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMaterialService cria o serviço de materiais
func NewMaterialService(repo *repository.Repository, logger *zap.Logger) MaterialService {
	return &materialService{repo: repo, logger: logger}
}

func (s *materialService) ListByCourse(ctx context.Context, courseID int) ([]model.Material, error) {
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	materiais, err := s.repo.Material.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("falha ao listar materiais", zap.Int("courseId", courseID), zap.Error(err))
		return nil, err
	}
	return materiais, nil
}

func (s *materialService) Create(ctx context.Context, req *dto.CreateMaterialRequest) (*model.Material, error) {
	if _, err := s.repo.Course.GetByID(ctx, req.CourseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	material := &model.Material{
		CourseID: req.CourseID,
		Tipo:     req.Tipo,
		Titulo:   req.Titulo,
		URL:      req.URL,
	}
	if err := s.repo.Material.Create(ctx, material); err != nil {
		s.logger.Error("falha ao criar material", zap.Error(err))
		return nil, err
	}
	return material, nil
}

func (s *materialService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Material.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMaterialNotFound
		}
		s.logger.Error("falha ao excluir material", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
