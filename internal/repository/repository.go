package repository

import (
	"context"
	"errors"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

// ErrNotFound registro inexistente, qualquer que seja o backend
var ErrNotFound = errors.New("registro não encontrado")

// Counts contagens agregadas do dashboard
type Counts struct {
	TotalStudents     int `json:"totalStudents"`
	TotalCourses      int `json:"totalCourses"`
	ActiveEnrollments int `json:"activeEnrollments"`
}

// CourseCount alunos com matrícula não cancelada por curso,
// na ordem de definição dos cursos
type CourseCount struct {
	Curso  string `json:"curso"`
	Alunos int    `json:"alunos"`
}

// EnrollmentJoined matrícula decorada com os nomes do aluno e do curso.
// Referências quebradas viram o placeholder "—" em vez de erro.
type EnrollmentJoined struct {
	model.Enrollment
	Aluno string `json:"aluno"`
	Curso string `json:"curso"`
}

// StudentRepository acesso a alunos
type StudentRepository interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByID(ctx context.Context, id int) (*model.Student, error)
	// Create atribui o id (max existente + 1; ids não são reusados)
	Create(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, id int) error
}

// CourseRepository acesso a cursos
type CourseRepository interface {
	List(ctx context.Context) ([]model.Course, error)
	GetByID(ctx context.Context, id int) (*model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int) error
}

// EnrollmentRepository acesso a matrículas e visões agregadas
type EnrollmentRepository interface {
	List(ctx context.Context) ([]model.Enrollment, error)
	GetByID(ctx context.Context, id int) (*model.Enrollment, error)
	Create(ctx context.Context, e *model.Enrollment) error
	// RemoveByStudentCourse remove TODAS as matrículas do par (aluno, curso)
	// e retorna quantas foram removidas. Semântica em massa preservada do
	// protótipo; chamadores que esperam exclusão de linha única devem checar
	// o retorno.
	RemoveByStudentCourse(ctx context.Context, studentID, courseID int) (int, error)
	ListJoined(ctx context.Context) ([]EnrollmentJoined, error)
	CountByCourse(ctx context.Context, courseID int) (int, error)
	Counts(ctx context.Context) (*Counts, error)
	StudentsPerCourse(ctx context.Context) ([]CourseCount, error)
}

// TurmaRepository acesso a turmas
type TurmaRepository interface {
	List(ctx context.Context) ([]model.Turma, error)
	GetByID(ctx context.Context, id int) (*model.Turma, error)
	Create(ctx context.Context, t *model.Turma) error
	Update(ctx context.Context, t *model.Turma) error
	Delete(ctx context.Context, id int) error
}

// MaterialRepository acesso a materiais de estudo
type MaterialRepository interface {
	ListByCourse(ctx context.Context, courseID int) ([]model.Material, error)
	Create(ctx context.Context, m *model.Material) error
	Delete(ctx context.Context, id int) error
}

// AcademicRepository atividades, entregas e notas
type AcademicRepository interface {
	ActivitiesByCourse(ctx context.Context, courseID int) ([]model.Activity, error)
	CreateActivity(ctx context.Context, a *model.Activity) error
	SubmissionsByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.ActivitySubmission, error)
	SetSubmissionEntregue(ctx context.Context, activityID, studentID int, entregue bool) error
	GradesByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.Grade, error)
	UpdateGradeValor(ctx context.Context, gradeID, valor int) error
}

// UserRepository usuários do backoffice (autenticação)
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// Repository agregação de todos os repositórios
type Repository struct {
	Student    StudentRepository
	Course     CourseRepository
	Enrollment EnrollmentRepository
	Turma      TurmaRepository
	Material   MaterialRepository
	Academic   AcademicRepository
	User       UserRepository
}
