package service

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students []model.Student
}

func (m *mockStudentRepo) List(_ context.Context) ([]model.Student, error) {
	return m.students, nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, s := range m.students {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockStudentRepo) Create(_ context.Context, s *model.Student) error {
	max := 0
	for _, existing := range m.students {
		if existing.ID > max {
			max = existing.ID
		}
	}
	s.ID = max + 1
	m.students = append(m.students, *s)
	return nil
}

func (m *mockStudentRepo) Update(_ context.Context, s *model.Student) error {
	for i := range m.students {
		if m.students[i].ID == s.ID {
			m.students[i] = *s
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockStudentRepo) Delete(_ context.Context, id int) error {
	for i := range m.students {
		if m.students[i].ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ── Mock CourseRepository ──

type mockCourseRepo struct {
	courses []model.Course
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	return m.courses, nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id int) (*model.Course, error) {
	for _, c := range m.courses {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCourseRepo) Create(_ context.Context, c *model.Course) error {
	max := 0
	for _, existing := range m.courses {
		if existing.ID > max {
			max = existing.ID
		}
	}
	c.ID = max + 1
	m.courses = append(m.courses, *c)
	return nil
}

func (m *mockCourseRepo) Update(_ context.Context, c *model.Course) error {
	for i := range m.courses {
		if m.courses[i].ID == c.ID {
			m.courses[i] = *c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockCourseRepo) Delete(_ context.Context, id int) error {
	for i := range m.courses {
		if m.courses[i].ID == id {
			m.courses = append(m.courses[:i], m.courses[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ── Mock EnrollmentRepository ──

type mockEnrollmentRepo struct {
	enrollments []model.Enrollment
	students    *mockStudentRepo
	courses     *mockCourseRepo
}

func (m *mockEnrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	return m.enrollments, nil
}

func (m *mockEnrollmentRepo) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	for _, e := range m.enrollments {
		if e.ID == id {
			out := e
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockEnrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	max := 0
	for _, existing := range m.enrollments {
		if existing.ID > max {
			max = existing.ID
		}
	}
	e.ID = max + 1
	m.enrollments = append(m.enrollments, *e)
	return nil
}

func (m *mockEnrollmentRepo) RemoveByStudentCourse(_ context.Context, studentID, courseID int) (int, error) {
	kept := m.enrollments[:0]
	removed := 0
	for _, e := range m.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	m.enrollments = kept
	return removed, nil
}

func (m *mockEnrollmentRepo) ListJoined(ctx context.Context) ([]repository.EnrollmentJoined, error) {
	joined := make([]repository.EnrollmentJoined, 0, len(m.enrollments))
	for _, e := range m.enrollments {
		j := repository.EnrollmentJoined{Enrollment: e, Aluno: "—", Curso: "—"}
		if m.students != nil {
			if s, err := m.students.GetByID(ctx, e.StudentID); err == nil {
				j.Aluno = s.Nome
			}
		}
		if m.courses != nil {
			if c, err := m.courses.GetByID(ctx, e.CourseID); err == nil {
				j.Curso = c.Nome
			}
		}
		joined = append(joined, j)
	}
	return joined, nil
}

func (m *mockEnrollmentRepo) CountByCourse(_ context.Context, courseID int) (int, error) {
	count := 0
	for _, e := range m.enrollments {
		if e.CourseID == courseID && e.Status != model.EnrollmentCancelada {
			count++
		}
	}
	return count, nil
}

func (m *mockEnrollmentRepo) Counts(_ context.Context) (*repository.Counts, error) {
	active := 0
	for _, e := range m.enrollments {
		if e.Status == model.EnrollmentAtiva {
			active++
		}
	}
	counts := &repository.Counts{ActiveEnrollments: active}
	if m.students != nil {
		counts.TotalStudents = len(m.students.students)
	}
	if m.courses != nil {
		counts.TotalCourses = len(m.courses.courses)
	}
	return counts, nil
}

func (m *mockEnrollmentRepo) StudentsPerCourse(_ context.Context) ([]repository.CourseCount, error) {
	perCourse := make(map[int]int)
	for _, e := range m.enrollments {
		if e.Status != model.EnrollmentCancelada {
			perCourse[e.CourseID]++
		}
	}
	var result []repository.CourseCount
	if m.courses != nil {
		for _, c := range m.courses.courses {
			result = append(result, repository.CourseCount{Curso: c.Nome, Alunos: perCourse[c.ID]})
		}
	}
	return result, nil
}

// ── Mock TurmaRepository ──

type mockTurmaRepo struct {
	turmas []model.Turma
}

func (m *mockTurmaRepo) List(_ context.Context) ([]model.Turma, error) {
	return m.turmas, nil
}

func (m *mockTurmaRepo) GetByID(_ context.Context, id int) (*model.Turma, error) {
	for _, tu := range m.turmas {
		if tu.ID == id {
			out := tu
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockTurmaRepo) Create(_ context.Context, tu *model.Turma) error {
	max := 0
	for _, existing := range m.turmas {
		if existing.ID > max {
			max = existing.ID
		}
	}
	tu.ID = max + 1
	m.turmas = append(m.turmas, *tu)
	return nil
}

func (m *mockTurmaRepo) Update(_ context.Context, tu *model.Turma) error {
	for i := range m.turmas {
		if m.turmas[i].ID == tu.ID {
			m.turmas[i] = *tu
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockTurmaRepo) Delete(_ context.Context, id int) error {
	for i := range m.turmas {
		if m.turmas[i].ID == id {
			m.turmas = append(m.turmas[:i], m.turmas[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ── Mock MaterialRepository ──

type mockMaterialRepo struct {
	materiais []model.Material
}

func (m *mockMaterialRepo) ListByCourse(_ context.Context, courseID int) ([]model.Material, error) {
	var out []model.Material
	for _, mat := range m.materiais {
		if mat.CourseID == courseID {
			out = append(out, mat)
		}
	}
	return out, nil
}

func (m *mockMaterialRepo) Create(_ context.Context, mat *model.Material) error {
	max := 0
	for _, existing := range m.materiais {
		if existing.ID > max {
			max = existing.ID
		}
	}
	mat.ID = max + 1
	m.materiais = append(m.materiais, *mat)
	return nil
}

func (m *mockMaterialRepo) Delete(_ context.Context, id int) error {
	for i := range m.materiais {
		if m.materiais[i].ID == id {
			m.materiais = append(m.materiais[:i], m.materiais[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

// ── Mock AcademicRepository ──

type mockAcademicRepo struct {
	activities  []model.Activity
	submissions []model.ActivitySubmission
	grades      []model.Grade
}

func (m *mockAcademicRepo) ActivitiesByCourse(_ context.Context, courseID int) ([]model.Activity, error) {
	var out []model.Activity
	for _, a := range m.activities {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAcademicRepo) CreateActivity(_ context.Context, a *model.Activity) error {
	max := 0
	for _, existing := range m.activities {
		if existing.ID > max {
			max = existing.ID
		}
	}
	a.ID = max + 1
	m.activities = append(m.activities, *a)
	return nil
}

func (m *mockAcademicRepo) SubmissionsByStudentCourse(_ context.Context, studentID, courseID int) ([]model.ActivitySubmission, error) {
	inCourse := make(map[int]bool)
	for _, a := range m.activities {
		if a.CourseID == courseID {
			inCourse[a.ID] = true
		}
	}
	var out []model.ActivitySubmission
	for _, s := range m.submissions {
		if s.StudentID == studentID && inCourse[s.ActivityID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockAcademicRepo) SetSubmissionEntregue(_ context.Context, activityID, studentID int, entregue bool) error {
	for i := range m.submissions {
		if m.submissions[i].ActivityID == activityID && m.submissions[i].StudentID == studentID {
			m.submissions[i].Entregue = entregue
			if entregue {
				at := store.DeliveredAt(activityID, studentID)
				m.submissions[i].EntregueEm = &at
			} else {
				m.submissions[i].EntregueEm = nil
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockAcademicRepo) GradesByStudentCourse(_ context.Context, studentID, courseID int) ([]model.Grade, error) {
	var out []model.Grade
	for _, g := range m.grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockAcademicRepo) UpdateGradeValor(_ context.Context, gradeID, valor int) error {
	for i := range m.grades {
		if m.grades[i].ID == gradeID {
			m.grades[i].Valor = valor
			return nil
		}
	}
	return repository.ErrNotFound
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []model.User
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = len(m.users) + 1
	m.users = append(m.users, *u)
	return nil
}

// ── Montagem padrão ──

// fixtureRepos repositórios pré-populados: 2 alunos, 2 cursos, 1 matrícula
// ativa de (1,1), 3 atividades no curso 1 com 2 entregues e notas 60 e 80
func fixtureRepos() *repository.Repository {
	students := &mockStudentRepo{students: []model.Student{
		{ID: 1, Nome: "Ana Souza", CPF: "001", DataNasc: "2000-01-01"},
		{ID: 2, Nome: "Bruno Lima", CPF: "002", DataNasc: "2001-02-02"},
	}}
	courses := &mockCourseRepo{courses: []model.Course{
		{ID: 1, Codigo: "MAT101", Nome: "Matemática Básica", CargaHoraria: 60, Status: model.CourseAtivo},
		{ID: 2, Codigo: "PORT101", Nome: "Português", CargaHoraria: 40, Status: model.CourseAtivo},
	}}
	enrollments := &mockEnrollmentRepo{
		enrollments: []model.Enrollment{
			{ID: 1, StudentID: 1, CourseID: 1, DataMatricula: "2024-02-01", Status: model.EnrollmentAtiva},
		},
		students: students,
		courses:  courses,
	}
	delivered := "2024-01-01"
	academic := &mockAcademicRepo{
		activities: []model.Activity{
			{ID: 1, CourseID: 1, Titulo: "Lista 1", Prazo: "2024-04-01"},
			{ID: 2, CourseID: 1, Titulo: "Trabalho", Prazo: "2024-05-01"},
			{ID: 3, CourseID: 1, Titulo: "Projeto", Prazo: "2024-06-01"},
		},
		submissions: []model.ActivitySubmission{
			{ID: 1, ActivityID: 1, StudentID: 1, Entregue: true, EntregueEm: &delivered},
			{ID: 2, ActivityID: 2, StudentID: 1, Entregue: true, EntregueEm: &delivered},
			{ID: 3, ActivityID: 3, StudentID: 1, Entregue: false},
		},
		grades: []model.Grade{
			{ID: 1, StudentID: 1, CourseID: 1, Valor: 60, Data: "2024-04-15"},
			{ID: 2, StudentID: 1, CourseID: 1, Valor: 80, Data: "2024-06-15"},
		},
	}

	return &repository.Repository{
		Student:    students,
		Course:     courses,
		Enrollment: enrollments,
		Turma:      &mockTurmaRepo{},
		Material:   &mockMaterialRepo{},
		Academic:   academic,
		User:       &mockUserRepo{},
	}
}
