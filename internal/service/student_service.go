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

// ── Erros de negócio de alunos ──

var ErrStudentNotFound = errors.New("aluno não encontrado")

// StudentService operações sobre alunos
type StudentService interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error)
	Update(ctx context.Context, id int, req *dto.UpdateStudentRequest) (*model.Student, error)
	Delete(ctx context.Context, id int) error
}

type studentService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewStudentService cria o serviço de alunos
func NewStudentService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, cache: cache, logger: logger}
}

func (s *studentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.repo.Student.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar alunos", zap.Error(err))
		return nil, err
	}
	return students, nil
}

func (s *studentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("falha ao buscar aluno", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		Nome:     req.Nome,
		CPF:      req.CPF,
		DataNasc: req.DataNasc,
		Celular:  req.Celular,
		Foto:     req.Foto,
	}
	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("falha ao criar aluno", zap.Error(err))
		return nil, err
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id int, req *dto.UpdateStudentRequest) (*model.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		student.Nome = *req.Nome
	}
	if req.CPF != nil {
		student.CPF = *req.CPF
	}
	if req.DataNasc != nil {
		student.DataNasc = *req.DataNasc
	}
	if req.Celular != nil {
		student.Celular = *req.Celular
	}
	if req.Foto != nil {
		student.Foto = req.Foto
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("falha ao atualizar aluno", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Student.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudentNotFound
		}
		s.logger.Error("falha ao excluir aluno", zap.Int("id", id), zap.Error(err))
		return err
	}

	invalidateDashboard(ctx, s.cache, s.logger)
	return nil
}
