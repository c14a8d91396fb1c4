package dto

// ── DTOs de cursos ──

// CreateCourseRequest cadastro de curso
type CreateCourseRequest struct {
	Codigo       string `json:"codigo"       binding:"required,max=20"`
	Nome         string `json:"nome"         binding:"required,min=2,max=100"`
	CargaHoraria int    `json:"cargaHoraria" binding:"required,gt=0"`
	Status       string `json:"status"       binding:"omitempty,oneof=Ativo Inativo"`
	Descricao    string `json:"descricao"    binding:"omitempty"`
}

// UpdateCourseRequest atualização parcial de curso
type UpdateCourseRequest struct {
	Codigo       *string `json:"codigo"       binding:"omitempty,max=20"`
	Nome         *string `json:"nome"         binding:"omitempty,min=2,max=100"`
	CargaHoraria *int    `json:"cargaHoraria" binding:"omitempty,gt=0"`
	Status       *string `json:"status"       binding:"omitempty,oneof=Ativo Inativo"`
	Descricao    *string `json:"descricao"    binding:"omitempty"`
}
