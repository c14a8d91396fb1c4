package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

type enrollmentRepo struct {
	c *Client
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if err := r.c.do(ctx, http.MethodGet, "/api/matriculas/", nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/matriculas/%d/", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	return r.c.do(ctx, http.MethodPost, "/api/matriculas/", e, e)
}

// RemoveByStudentCourse lista as matrículas do par e exclui uma a uma,
// já que o backend externo só expõe exclusão por id
func (r *enrollmentRepo) RemoveByStudentCourse(ctx context.Context, studentID, courseID int) (int, error) {
	enrollments, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range enrollments {
		if e.StudentID != studentID || e.CourseID != courseID {
			continue
		}
		if err := r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/matriculas/%d/", e.ID), nil, nil); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// ListJoined decora as matrículas com nomes de aluno e curso a partir das
// listas completas; referências quebradas viram o placeholder "—"
func (r *enrollmentRepo) ListJoined(ctx context.Context) ([]repository.EnrollmentJoined, error) {
	enrollments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var students []model.Student
	if err := r.c.do(ctx, http.MethodGet, "/api/alunos/", nil, &students); err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := r.c.do(ctx, http.MethodGet, "/api/cursos/", nil, &courses); err != nil {
		return nil, err
	}

	studentNames := make(map[int]string, len(students))
	for _, s := range students {
		studentNames[s.ID] = s.Nome
	}
	courseNames := make(map[int]string, len(courses))
	for _, c := range courses {
		courseNames[c.ID] = c.Nome
	}

	joined := make([]repository.EnrollmentJoined, 0, len(enrollments))
	for _, e := range enrollments {
		aluno, ok := studentNames[e.StudentID]
		if !ok {
			aluno = "—"
		}
		curso, ok := courseNames[e.CourseID]
		if !ok {
			curso = "—"
		}
		joined = append(joined, repository.EnrollmentJoined{Enrollment: e, Aluno: aluno, Curso: curso})
	}
	return joined, nil
}

func (r *enrollmentRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	enrollments, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range enrollments {
		if e.CourseID == courseID && e.Status != model.EnrollmentCancelada {
			count++
		}
	}
	return count, nil
}

func (r *enrollmentRepo) Counts(ctx context.Context) (*repository.Counts, error) {
	var students []model.Student
	if err := r.c.do(ctx, http.MethodGet, "/api/alunos/", nil, &students); err != nil {
		return nil, err
	}
	var courses []model.Course
	if err := r.c.do(ctx, http.MethodGet, "/api/cursos/", nil, &courses); err != nil {
		return nil, err
	}
	enrollments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, e := range enrollments {
		if e.Status == model.EnrollmentAtiva {
			active++
		}
	}
	return &repository.Counts{
		TotalStudents:     len(students),
		TotalCourses:      len(courses),
		ActiveEnrollments: active,
	}, nil
}

func (r *enrollmentRepo) StudentsPerCourse(ctx context.Context) ([]repository.CourseCount, error) {
	var courses []model.Course
	if err := r.c.do(ctx, http.MethodGet, "/api/cursos/", nil, &courses); err != nil {
		return nil, err
	}
	enrollments, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	perCourse := make(map[int]int, len(courses))
	for _, e := range enrollments {
		if e.Status != model.EnrollmentCancelada {
			perCourse[e.CourseID]++
		}
	}

	counts := make([]repository.CourseCount, 0, len(courses))
	for _, c := range courses {
		counts = append(counts, repository.CourseCount{Curso: c.Nome, Alunos: perCourse[c.ID]})
	}
	return counts, nil
}
