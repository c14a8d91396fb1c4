package dto

import "github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"

// ── DTOs acadêmicos (atividades, entregas, notas, progresso) ──

// CreateActivityRequest cadastro de atividade de curso
type CreateActivityRequest struct {
	CourseID int    `json:"courseId" binding:"required,gt=0"`
	Titulo   string `json:"titulo"   binding:"required,min=2,max=200"`
	Prazo    string `json:"prazo"    binding:"required,datetime=2006-01-02"`
}

// SetSubmissionRequest marca ou desmarca a entrega de uma atividade
type SetSubmissionRequest struct {
	ActivityID int  `json:"activityId" binding:"required,gt=0"`
	StudentID  int  `json:"studentId"  binding:"required,gt=0"`
	Entregue   bool `json:"entregue"`
}

// UpdateGradeRequest altera o valor de uma nota (escala 0..100)
type UpdateGradeRequest struct {
	Valor *int `json:"valor" binding:"required,gte=0,lte=100"`
}

// SubmissionDetail entrega decorada com a atividade correspondente
type SubmissionDetail struct {
	model.ActivitySubmission
	Titulo string `json:"titulo"`
	Prazo  string `json:"prazo"`
}

// ProgressResponse progresso consolidado de um aluno em um curso.
// A média composta pondera notas (70%) e entregas (30%) na escala 0..10.
type ProgressResponse struct {
	StudentID      int                `json:"studentId"`
	CourseID       int                `json:"courseId"`
	Grades         []model.Grade      `json:"grades"`
	Submissions    []SubmissionDetail `json:"submissions"`
	Delivered      int                `json:"delivered"`
	TotalActivity  int                `json:"totalActivity"`
	GradeAverage   float64            `json:"gradeAverage"`
	CompositeScore float64            `json:"compositeScore"`
	Situacao       string             `json:"situacao"`
}
