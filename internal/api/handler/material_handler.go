package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/dto"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// MaterialHandler materiais de estudo
type MaterialHandler struct {
	materialSvc service.MaterialService
}

// NewMaterialHandler cria o MaterialHandler
func NewMaterialHandler(materialSvc service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialSvc: materialSvc}
}

// ListByCourse lista os materiais de um curso
// GET /api/v1/cursos/:id/materiais
func (h *MaterialHandler) ListByCourse(c *gin.Context) {
	courseID, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	materiais, err := h.materialSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, gin.H{"list": materiais})
}

// Create cadastra um material
// POST /api/v1/materiais
func (h *MaterialHandler) Create(c *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "parâmetros inválidos")
		return
	}

	material, err := h.materialSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Created(c, material)
}

// Delete exclui um material
// DELETE /api/v1/materiais/:id
func (h *MaterialHandler) Delete(c *gin.Context) {
	id, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	if err := h.materialSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.OK(c, nil)
}

func (h *MaterialHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMaterialNotFound):
		response.NotFound(c, 20005, err.Error())
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20002, err.Error())
	default:
		response.InternalError(c)
	}
}
