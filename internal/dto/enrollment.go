package dto

// ── DTOs de matrículas ──

// CreateEnrollmentRequest matrícula de aluno em curso.
// dataMatricula vazia recebe a data corrente.
type CreateEnrollmentRequest struct {
	StudentID     int    `json:"studentId"     binding:"required,gt=0"`
	CourseID      int    `json:"courseId"      binding:"required,gt=0"`
	DataMatricula string `json:"dataMatricula" binding:"omitempty,datetime=2006-01-02"`
	Status        string `json:"status"        binding:"omitempty,oneof=Ativa Cancelada Concluída"`
}

// RemoveEnrollmentRequest remoção por par (aluno, curso)
type RemoveEnrollmentRequest struct {
	StudentID int `json:"studentId" binding:"required,gt=0"`
	CourseID  int `json:"courseId"  binding:"required,gt=0"`
}

// RemoveEnrollmentResponse quantidade de matrículas removidas do par
type RemoveEnrollmentResponse struct {
	Removed int `json:"removed"`
}
