package dto

import "github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"

// ── DTOs do dashboard e relatórios ──

// DashboardResponse visão agregada da secretaria
type DashboardResponse struct {
	Counts            repository.Counts        `json:"counts"`
	StudentsPerCourse []repository.CourseCount `json:"studentsPerCourse"`
}

// ReportRow linha do relatório de desempenho por matrícula
type ReportRow struct {
	Aluno    string  `json:"aluno"`
	Curso    string  `json:"curso"`
	Media    float64 `json:"media"`
	Situacao string  `json:"situacao"`
}

// ReportSummary totais do relatório de desempenho
type ReportSummary struct {
	Aprovados  int `json:"aprovados"`
	ProvaFinal int `json:"provaFinal"`
	Reprovados int `json:"reprovados"`
}

// ReportResponse relatório de desempenho completo
type ReportResponse struct {
	Rows    []ReportRow   `json:"rows"`
	Summary ReportSummary `json:"summary"`
}
