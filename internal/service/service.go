package service

import (
	"go.uber.org/zap"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/config"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/jwt"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/redis"
)

// Service agregação de todos os serviços
type Service struct {
	Student    StudentService
	Course     CourseService
	Enrollment EnrollmentService
	Turma      TurmaService
	Material   MaterialService
	Academic   AcademicService
	Dashboard  DashboardService
	Auth       AuthService
	Export     ExportService
	Report     ReportService
}

// NewService monta a agregação de serviços. cache pode ser nil; nesse caso o
// dashboard consulta os repositórios a cada chamada e o logout não revoga
// tokens antes da expiração.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Student:    NewStudentService(repo, cache, logger),
		Course:     NewCourseService(repo, cache, logger),
		Enrollment: NewEnrollmentService(repo, cache, logger),
		Turma:      NewTurmaService(repo, logger),
		Material:   NewMaterialService(repo, logger),
		Academic:   NewAcademicService(repo, logger),
		Dashboard:  NewDashboardService(cfg, repo, cache, logger),
		Auth:       NewAuthService(repo, jwtMgr, cache, logger),
		Export:     NewExportService(repo, logger),
		Report:     NewReportService(repo, logger),
	}
}
