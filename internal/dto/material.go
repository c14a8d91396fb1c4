package dto

// ── DTOs de materiais de estudo ──

// CreateMaterialRequest cadastro de material (PDF ou link externo)
type CreateMaterialRequest struct {
	CourseID int    `json:"courseId" binding:"required,gt=0"`
	Tipo     string `json:"tipo"     binding:"required,oneof=PDF LINK"`
	Titulo   string `json:"titulo"   binding:"required,min=2,max=200"`
	URL      string `json:"url"      binding:"required,url"`
}
