package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// StudentHandler alunos
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler cria o StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List lista todos os alunos
// GET /api/v1/alunos
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.studentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": students})
}

// Get busca um aluno por id
// GET /api/v1/alunos/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	student, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// Create cadastra um aluno
// POST /api/v1/alunos
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	student, err := h.studentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, student)
}

// Update atualiza parcialmente um aluno
// PUT /api/v1/alunos/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	student, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, student)
}

// Delete exclui um aluno
// DELETE /api/v1/alunos/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *StudentHandler) handleError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrStudentNotFound) {
		response.NotFound(c, 20001, err.Error())
		return
	}
	response.InternalError(c)
}
