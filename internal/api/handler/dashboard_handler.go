package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/service"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/pkg/response"
)

// DashboardHandler visão agregada e relatórios
type DashboardHandler struct {
	dashboardSvc service.DashboardService
	reportSvc    service.ReportService
}

// NewDashboardHandler cria o DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService, reportSvc service.ReportService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc, reportSvc: reportSvc}
}

// Dashboard contagens e alunos por curso
// GET /api/v1/dashboard
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	resp, err := h.dashboardSvc.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}

// Performance relatório de desempenho por matrícula
// GET /api/v1/relatorios/desempenho
func (h *DashboardHandler) Performance(c *gin.Context) {
	resp, err := h.reportSvc.Performance(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, resp)
}
