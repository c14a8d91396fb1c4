package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// TurmaHandler turmas
type TurmaHandler struct {
	turmaSvc service.TurmaService
}

// NewTurmaHandler cria o TurmaHandler
func NewTurmaHandler(turmaSvc service.TurmaService) *TurmaHandler {
	return &TurmaHandler{turmaSvc: turmaSvc}
}

// List lista todas as turmas
// GET /api/v1/turmas
func (h *TurmaHandler) List(c *gin.Context) {
	turmas, err := h.turmaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": turmas})
}

// Get busca uma turma por id
// GET /api/v1/turmas/:id
func (h *TurmaHandler) Get(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	turma, err := h.turmaSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, turma)
}

// Create cadastra uma turma
// POST /api/v1/turmas
func (h *TurmaHandler) Create(c *gin.Context) {
	var req dto.CreateTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	turma, err := h.turmaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, turma)
}

// Update atualiza parcialmente uma turma
// PUT /api/v1/turmas/:id
func (h *TurmaHandler) Update(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTurmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	turma, err := h.turmaSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, turma)
}

// Delete exclui uma turma
// DELETE /api/v1/turmas/:id
func (h *TurmaHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.turmaSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *TurmaHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTurmaNotFound):
		response.NotFound(c, 20004, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20002, err.Error())
	default:
		response.InternalError(c)
	}
}
