package dto

// ── DTOs de turmas ──

// CreateTurmaRequest cadastro de turma
type CreateTurmaRequest struct {
	Nome     string `json:"nome"     binding:"required,min=2,max=100"`
	Ano      int    `json:"ano"      binding:"required,gte=2000,lte=2100"`
	CourseID *int   `json:"courseId" binding:"omitempty,gt=0"`
}

// UpdateTurmaRequest atualização parcial de turma
type UpdateTurmaRequest struct {
	Nome     *string `json:"nome"     binding:"omitempty,min=2,max=100"`
	Ano      *int    `json:"ano"      binding:"omitempty,gte=2000,lte=2100"`
	CourseID *int    `json:"courseId" binding:"omitempty,gt=0"`
}
