package dto

// ── DTOs de alunos ──

// CreateStudentRequest cadastro de aluno
type CreateStudentRequest struct {
	Nome     string  `json:"nome"     binding:"required,min=2,max=100"`
	CPF      string  `json:"cpf"      binding:"required"`
	DataNasc string  `json:"dataNasc" binding:"required,datetime=2006-01-02"`
	Celular  string  `json:"celular"  binding:"omitempty,max=20"`
	Foto     *string `json:"foto"     binding:"omitempty"`
}

// UpdateStudentRequest atualização parcial de aluno; campos nulos são mantidos
type UpdateStudentRequest struct {
	Nome     *string `json:"nome"     binding:"omitempty,min=2,max=100"`
	CPF      *string `json:"cpf"      binding:"omitempty"`
	DataNasc *string `json:"dataNasc" binding:"omitempty,datetime=2006-01-02"`
	Celular  *string `json:"celular"  binding:"omitempty,max=20"`
	Foto     *string `json:"foto"     binding:"omitempty"`
}
