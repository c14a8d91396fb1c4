package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

const dashboardCacheKey = "summary"

// DashboardService visão agregada da secretaria, com cache opcional
type DashboardService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	cfg    *config.Config
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewDashboardService cria o serviço do dashboard
func NewDashboardService(cfg *config.Config, repo *repository.Repository, cache *redis.Client, logger *zap.Logger) DashboardService {
	return &dashboardService{cfg: cfg, repo: repo, cache: cache, logger: logger}
}

// Dashboard retorna contagens e alunos por curso. Com Redis disponível o
// resultado fica em cache pelo TTL configurado; falhas de cache degradam
// para consulta direta, nunca para erro.
func (s *dashboardService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCached(ctx, dashboardCacheKey)
		if err != nil {
			s.logger.Warn("falha ao ler cache do dashboard", zap.Error(err))
		} else if cached != "" {
			var resp dto.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
			s.logger.Warn("cache do dashboard corrompido, recalculando", zap.Error(err))
		}
	}

	counts, err := s.repo.Enrollment.Counts(ctx)
	if err != nil {
		s.logger.Error("falha ao calcular contagens do dashboard", zap.Error(err))
		return nil, err
	}
	perCourse, err := s.repo.Enrollment.StudentsPerCourse(ctx)
	if err != nil {
		s.logger.Error("falha ao calcular alunos por curso", zap.Error(err))
		return nil, err
	}

	resp := &dto.DashboardResponse{Counts: *counts, StudentsPerCourse: perCourse}

	if s.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.SetCached(ctx, dashboardCacheKey, string(payload), s.cfg.Redis.CountsTTL); err != nil {
				s.logger.Warn("falha ao gravar cache do dashboard", zap.Error(err))
			}
		}
	}

	return resp, nil
}

// invalidateDashboard descarta o cache agregado após mutações que afetam as
// contagens. cache nil é silenciosamente ignorado.
func invalidateDashboard(ctx context.Context, cache *redis.Client, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateCached(ctx, dashboardCacheKey); err != nil {
		logger.Warn("falha ao invalidar cache do dashboard", zap.Error(err))
	}
}
