package model

// Entidades do domínio escolar. Os nomes de campo JSON seguem o formato de
// intercâmbio original do front-end (português, camelCase), que também é o
// formato do blob persistido pelo backend local.

// ── Status ──

const (
	CourseAtivo   = "Ativo"
	CourseInativo = "Inativo"

	EnrollmentAtiva     = "Ativa"
	EnrollmentCancelada = "Cancelada"
	EnrollmentConcluida = "Concluída"

	MaterialPDF  = "PDF"
	MaterialLink = "LINK"
)

// Student aluno matriculável
type Student struct {
	ID       int     `json:"id"       gorm:"primaryKey"`
	Nome     string  `json:"nome"     gorm:"type:varchar(100);not null"`
	CPF      string  `json:"cpf"      gorm:"type:varchar(14);not null"`
	DataNasc string  `json:"dataNasc" gorm:"column:data_nasc;type:varchar(10);not null"` // ISO yyyy-mm-dd
	Celular  string  `json:"celular"  gorm:"type:varchar(20);not null;default:''"`
	Foto     *string `json:"foto"     gorm:"type:text"`
}

// TableName nome da tabela
func (Student) TableName() string { return "students" }

// Course curso ofertado
type Course struct {
	ID           int    `json:"id"           gorm:"primaryKey"`
	Codigo       string `json:"codigo"       gorm:"type:varchar(20);not null"`
	Nome         string `json:"nome"         gorm:"type:varchar(100);not null"`
	CargaHoraria int    `json:"cargaHoraria" gorm:"column:carga_horaria;not null"` // horas
	Status       string `json:"status"       gorm:"type:varchar(10);not null;default:'Ativo'"`
	Descricao    string `json:"descricao,omitempty" gorm:"type:text;not null;default:''"`
}

// TableName nome da tabela
func (Course) TableName() string { return "courses" }

// Enrollment matrícula de um aluno em um curso.
// Mais de uma matrícula pode referenciar o mesmo par (aluno, curso); a camada
// de dados não impõe unicidade composta.
type Enrollment struct {
	ID            int    `json:"id"            gorm:"primaryKey"`
	StudentID     int    `json:"studentId"     gorm:"column:student_id;not null"`
	CourseID      int    `json:"courseId"      gorm:"column:course_id;not null"`
	DataMatricula string `json:"dataMatricula" gorm:"column:data_matricula;type:varchar(10);not null"`
	Status        string `json:"status"        gorm:"type:varchar(10);not null;default:'Ativa'"`
}

// TableName nome da tabela
func (Enrollment) TableName() string { return "enrollments" }

// Turma agrupamento informativo de alunos, opcionalmente ligado a um curso
type Turma struct {
	ID       int    `json:"id"   gorm:"primaryKey"`
	Nome     string `json:"nome" gorm:"type:varchar(100);not null"`
	Ano      int    `json:"ano"  gorm:"not null"`
	CourseID *int   `json:"courseId,omitempty" gorm:"column:course_id"`
}

// TableName nome da tabela
func (Turma) TableName() string { return "turmas" }

// Material material de estudo de um curso (PDF ou link externo)
type Material struct {
	ID       int    `json:"id"       gorm:"primaryKey"`
	CourseID int    `json:"courseId" gorm:"column:course_id;not null"`
	Tipo     string `json:"tipo"     gorm:"type:varchar(4);not null"`
	Titulo   string `json:"titulo"   gorm:"type:varchar(200);not null"`
	URL      string `json:"url"      gorm:"type:text;not null"`
	CriadoEm string `json:"criadoEm" gorm:"column:criado_em;type:varchar(30);not null"` // ISO
}

// TableName nome da tabela
func (Material) TableName() string { return "materiais" }

// Grade nota de avaliação por aluno/curso, valor em [0,100].
// Duas avaliações por matrícula são esperadas.
type Grade struct {
	ID        int    `json:"id"        gorm:"primaryKey"`
	StudentID int    `json:"studentId" gorm:"column:student_id;not null"`
	CourseID  int    `json:"courseId"  gorm:"column:course_id;not null"`
	Valor     int    `json:"valor"     gorm:"not null"`
	Data      string `json:"data"      gorm:"type:varchar(10);not null"`
}

// TableName nome da tabela
func (Grade) TableName() string { return "grades" }

// Activity atividade de um curso com prazo de entrega
type Activity struct {
	ID       int    `json:"id"       gorm:"primaryKey"`
	CourseID int    `json:"courseId" gorm:"column:course_id;not null"`
	Titulo   string `json:"titulo"   gorm:"type:varchar(200);not null"`
	Prazo    string `json:"prazo"    gorm:"type:varchar(10);not null"` // ISO
}

// TableName nome da tabela
func (Activity) TableName() string { return "activities" }

// ActivitySubmission entrega de atividade por aluno.
// No máximo uma entrega por par (atividade, aluno), mantida pelo passo de
// backfill, não por constraint.
type ActivitySubmission struct {
	ID         int     `json:"id"         gorm:"primaryKey"`
	ActivityID int     `json:"activityId" gorm:"column:activity_id;not null"`
	StudentID  int     `json:"studentId"  gorm:"column:student_id;not null"`
	Entregue   bool    `json:"entregue"   gorm:"not null;default:false"`
	EntregueEm *string `json:"entregueEm,omitempty" gorm:"column:entregue_em;type:varchar(10)"`
}

// TableName nome da tabela
func (ActivitySubmission) TableName() string { return "submissions" }

// User usuário do backoffice (autenticação)
type User struct {
	ID           int    `json:"id"    gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name"  gorm:"type:varchar(100);not null"`
	Email        string `json:"email" gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string `json:"-"     gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string `json:"role"  gorm:"type:varchar(20);not null;default:'aluno'"`
}

// TableName nome da tabela
func (User) TableName() string { return "users" }
