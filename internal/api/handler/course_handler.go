package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// CourseHandler cursos
type CourseHandler struct {
	courseSvc     service.CourseService
	enrollmentSvc service.EnrollmentService
}

// NewCourseHandler cria o CourseHandler
func NewCourseHandler(courseSvc service.CourseService, enrollmentSvc service.EnrollmentService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc, enrollmentSvc: enrollmentSvc}
}

// List lista todos os cursos
// GET /api/v1/cursos
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": courses})
}

// Get busca um curso por id
// GET /api/v1/cursos/:id
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, course)
}

// Create cadastra um curso
// POST /api/v1/cursos
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	course, err := h.courseSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, course)
}

// Update atualiza parcialmente um curso
// PUT /api/v1/cursos/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	course, err := h.courseSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, course)
}

// Delete exclui um curso
// DELETE /api/v1/cursos/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

// EnrollmentCount total de matrículas não canceladas do curso
// GET /api/v1/cursos/:id/matriculas/total
func (h *CourseHandler) EnrollmentCount(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	if _, err := h.courseSvc.GetByID(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	count, err := h.enrollmentSvc.CountByCourse(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"total": count})
}

func (h *CourseHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrCourseNotFound) {
		response.NotFound(c, 20002, err.Error())
		return
	}
	response.InternalError(c)
}
