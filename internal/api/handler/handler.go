package handler

import "github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"

// Handler agregação de todos os handlers
type Handler struct {
	Auth       *AuthHandler
	Student    *StudentHandler
	Course     *CourseHandler
	Enrollment *EnrollmentHandler
	Turma      *TurmaHandler
	Material   *MaterialHandler
	Academic   *AcademicHandler
	Dashboard  *DashboardHandler
	Export     *ExportHandler
}

// NewHandler cria a agregação de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Student:    NewStudentHandler(svc.Student),
		Course:     NewCourseHandler(svc.Course, svc.Enrollment),
		Enrollment: NewEnrollmentHandler(svc.Enrollment),
		Turma:      NewTurmaHandler(svc.Turma),
		Material:   NewMaterialHandler(svc.Material),
		Academic:   NewAcademicHandler(svc.Academic),
		Dashboard:  NewDashboardHandler(svc.Dashboard, svc.Report),
		Export:     NewExportHandler(svc.Export),
	}
}
