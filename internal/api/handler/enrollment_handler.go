package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// EnrollmentHandler matrículas
type EnrollmentHandler struct {
	enrollmentSvc service.EnrollmentService
}

// NewEnrollmentHandler cria o EnrollmentHandler
func NewEnrollmentHandler(enrollmentSvc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentSvc: enrollmentSvc}
}

// List lista as matrículas com nomes de aluno e curso
// GET /api/v1/matriculas
func (h *EnrollmentHandler) List(c *gin.Context) {
	joined, err := h.enrollmentSvc.ListJoined(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": joined})
}

// Create matricula um aluno em um curso
// POST /api/v1/matriculas
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	enrollment, err := h.enrollmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 20001, err.Error())
		case errors.Is(err, service.ErrCourseNotFound):
			response.NotFound(c, 20002, err.Error())
		case errors.Is(err, service.ErrEnrollmentDuplicate):
			response.BadRequest(c, 20101, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, enrollment)
}

// Remove exclui todas as matrículas do par (aluno, curso)
// DELETE /api/v1/matriculas?studentId=&courseId=
func (h *EnrollmentHandler) Remove(c *gin.Context) {
	studentID, ok := QueryInt(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := QueryInt(c, "courseId")
	if !ok {
		return
	}

	removed, err := h.enrollmentSvc.RemoveByStudentCourse(c.Request.Context(), studentID, courseID)
	if err != nil {
		if errors.Is(err, service.ErrEnrollmentNotFound) {
			response.NotFound(c, 20003, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, dto.RemoveEnrollmentResponse{Removed: removed})
}
