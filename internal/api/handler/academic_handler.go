package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// AcademicHandler atividades, entregas, notas e progresso
type AcademicHandler struct {
	academicSvc service.AcademicService
}

// NewAcademicHandler cria o AcademicHandler
func NewAcademicHandler(academicSvc service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academicSvc: academicSvc}
}

// ActivitiesByCourse lista as atividades de um curso
// GET /api/v1/cursos/:id/atividades
func (h *AcademicHandler) ActivitiesByCourse(c *gin.Context) {
	courseID, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	activities, err := h.academicSvc.ActivitiesByCourse(c.Request.Context(), courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": activities})
}

// CreateActivity cadastra uma atividade
// POST /api/v1/atividades
func (h *AcademicHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	activity, err := h.academicSvc.CreateActivity(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, activity)
}

// SetSubmission marca ou desmarca a entrega de uma atividade
// PUT /api/v1/entregas
func (h *AcademicHandler) SetSubmission(c *gin.Context) {
	var req dto.SetSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	if err := h.academicSvc.SetSubmission(c.Request.Context(), &req); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// UpdateGrade altera o valor de uma nota
// PUT /api/v1/notas/:id
func (h *AcademicHandler) UpdateGrade(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Valor == nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	if err := h.academicSvc.UpdateGrade(c.Request.Context(), id, *req.Valor); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// Progress progresso consolidado de um aluno em um curso
// GET /api/v1/alunos/:id/cursos/:courseId/progresso
func (h *AcademicHandler) Progress(c *gin.Context) {
	studentID, ok := ParamInt(c, "id")
	if !ok {
		return
	}
	courseID, ok := ParamInt(c, "courseId")
	if !ok {
		return
	}

	progress, err := h.academicSvc.Progress(c.Request.Context(), studentID, courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, progress)
}

func (h *AcademicHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 20001, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20002, err.Error())
	case errors.Is(err, service.ErrActivityNotFound):
		response.NotFound(c, 20006, err.Error())
	case errors.Is(err, service.ErrSubmissionNotFound):
		response.NotFound(c, 20007, err.Error())
	case errors.Is(err, service.ErrGradeNotFound):
		response.NotFound(c, 20008, err.Error())
	default:
		response.InternalError(c)
	}
}
