package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler exportações e importação em lote
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler cria o ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// StudentsCSV exporta os alunos em CSV
// GET /api/v1/export/alunos.csv
func (h *ExportHandler) StudentsCSV(c *gin.Context) {
	buf, filename, err := h.exportSvc.StudentsCSV(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeCSV, filename, buf.Bytes())
}

// StudentsXLSX exporta os alunos em Excel
// GET /api/v1/export/alunos.xlsx
func (h *ExportHandler) StudentsXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.StudentsXLSX(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, filename, buf.Bytes())
}

// EnrollmentsCSV exporta as matrículas em CSV
// GET /api/v1/export/matriculas.csv
func (h *ExportHandler) EnrollmentsCSV(c *gin.Context) {
	buf, filename, err := h.exportSvc.EnrollmentsCSV(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeCSV, filename, buf.Bytes())
}

// EnrollmentsXLSX exporta as matrículas em Excel
// GET /api/v1/export/matriculas.xlsx
func (h *ExportHandler) EnrollmentsXLSX(c *gin.Context) {
	buf, filename, err := h.exportSvc.EnrollmentsXLSX(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeXLSX, filename, buf.Bytes())
}

// CourseCalendar exporta as atividades do curso em iCalendar
// GET /api/v1/cursos/:id/calendario.ics
func (h *ExportHandler) CourseCalendar(c *gin.Context) {
	courseID, ok := ParamInt(c, "id")
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.CourseCalendar(c.Request.Context(), courseID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, contentTypeICS, filename, buf.Bytes())
}

// ImportStudents importa alunos de um CSV enviado no corpo da requisição
// POST /api/v1/import/alunos
func (h *ExportHandler) ImportStudents(c *gin.Context) {
	created, err := h.exportSvc.ImportStudentsCSV(c.Request.Context(), c.Request.Body)
	if err != nil {
		if errors.Is(err, service.ErrImportInvalidCSV) {
			response.BadRequest(c, 20301, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, gin.H{"created": created})
}

func (h *ExportHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 20002, err.Error())
	case errors.Is(err, service.ErrCalendarNoActivity):
		response.BadRequest(c, 20302, err.Error())
	default:
		response.InternalError(c)
	}
}

func sendFile(c *gin.Context, contentType, filename string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
