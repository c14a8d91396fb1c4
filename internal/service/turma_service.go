package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

// ── Erros de negócio de turmas ──

var ErrTurmaNotFound = errors.New("turma não encontrada")

// TurmaService operações sobre turmas
type TurmaService interface {
	List(ctx context.Context) ([]model.Turma, error)
	GetByID(ctx context.Context, id int) (*model.Turma, error)
	Create(ctx context.Context, req *dto.CreateTurmaRequest) (*model.Turma, error)
	Update(ctx context.Context, id int, req *dto.UpdateTurmaRequest) (*model.Turma, error)
	Delete(ctx context.Context, id int) error
}

type turmaService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTurmaService cria o serviço de turmas
func NewTurmaService(repo *repository.Repository, logger *zap.Logger) TurmaService {
	return &turmaService{repo: repo, logger: logger}
}

func (s *turmaService) List(ctx context.Context) ([]model.Turma, error) {
	turmas, err := s.repo.Turma.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar turmas", zap.Error(err))
		return nil, err
	}
	return turmas, nil
}

func (s *turmaService) GetByID(ctx context.Context, id int) (*model.Turma, error) {
	turma, err := s.repo.Turma.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTurmaNotFound
		}
		s.logger.Error("falha ao buscar turma", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return turma, nil
}

func (s *turmaService) Create(ctx context.Context, req *dto.CreateTurmaRequest) (*model.Turma, error) {
	if req.CourseID != nil {
		if _, err := s.repo.Course.GetByID(ctx, *req.CourseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
	}

	turma := &model.Turma{
		Nome:     req.Nome,
		Ano:      req.Ano,
		CourseID: req.CourseID,
	}
	if err := s.repo.Turma.Create(ctx, turma); err != nil {
		s.logger.Error("falha ao criar turma", zap.Error(err))
		return nil, err
	}
	return turma, nil
}

func (s *turmaService) Update(ctx context.Context, id int, req *dto.UpdateTurmaRequest) (*model.Turma, error) {
	turma, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		turma.Nome = *req.Nome
	}
	if req.Ano != nil {
		turma.Ano = *req.Ano
	}
	if req.CourseID != nil {
		if _, err := s.repo.Course.GetByID(ctx, *req.CourseID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrCourseNotFound
			}
			return nil, err
		}
		turma.CourseID = req.CourseID
	}

	if err := s.repo.Turma.Update(ctx, turma); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTurmaNotFound
		}
		s.logger.Error("falha ao atualizar turma", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return turma, nil
}

func (s *turmaService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Turma.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTurmaNotFound
		}
		s.logger.Error("falha ao excluir turma", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}
