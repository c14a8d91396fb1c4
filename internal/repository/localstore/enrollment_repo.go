package localstore

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type enrollmentRepo struct {
	st *store.Store
}

func (r *enrollmentRepo) List(_ context.Context) ([]model.Enrollment, error) {
	return r.st.Read().Enrollments, nil
}

func (r *enrollmentRepo) GetByID(_ context.Context, id int) (*model.Enrollment, error) {
	for _, e := range r.st.Read().Enrollments {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *enrollmentRepo) Create(_ context.Context, e *model.Enrollment) error {
	r.st.Mutate(func(ds *model.Dataset) {
		e.ID = ds.NextEnrollmentID()
		ds.Enrollments = append(ds.Enrollments, *e)
	})
	return nil
}

// RemoveByStudentCourse remove todas as matrículas do par (aluno, curso)
func (r *enrollmentRepo) RemoveByStudentCourse(_ context.Context, studentID, courseID int) (int, error) {
	removed := 0
	r.st.Mutate(func(ds *model.Dataset) {
		kept := ds.Enrollments[:0]
		for _, e := range ds.Enrollments {
			if e.StudentID == studentID && e.CourseID == courseID {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		ds.Enrollments = kept
	})
	return removed, nil
}

func (r *enrollmentRepo) ListJoined(_ context.Context) ([]repository.EnrollmentJoined, error) {
	ds := r.st.Read()

	byStudent := make(map[int]string, len(ds.Students))
	for _, s := range ds.Students {
		byStudent[s.ID] = s.Nome
	}
	byCourse := make(map[int]string, len(ds.Courses))
	for _, c := range ds.Courses {
		byCourse[c.ID] = c.Nome
	}

	joined := make([]repository.EnrollmentJoined, 0, len(ds.Enrollments))
	for _, e := range ds.Enrollments {
		aluno, ok := byStudent[e.StudentID]
		if !ok {
			aluno = "—"
		}
		curso, ok := byCourse[e.CourseID]
		if !ok {
			curso = "—"
		}
		joined = append(joined, repository.EnrollmentJoined{Enrollment: e, Aluno: aluno, Curso: curso})
	}
	return joined, nil
}

func (r *enrollmentRepo) CountByCourse(_ context.Context, courseID int) (int, error) {
	count := 0
	for _, e := range r.st.Read().Enrollments {
		if e.CourseID == courseID && e.Status != model.EnrollmentCancelada {
			count++
		}
	}
	return count, nil
}

func (r *enrollmentRepo) Counts(_ context.Context) (*repository.Counts, error) {
	ds := r.st.Read()
	active := 0
	for _, e := range ds.Enrollments {
		if e.Status == model.EnrollmentAtiva {
			active++
		}
	}
	return &repository.Counts{
		TotalStudents:     len(ds.Students),
		TotalCourses:      len(ds.Courses),
		ActiveEnrollments: active,
	}, nil
}

func (r *enrollmentRepo) StudentsPerCourse(_ context.Context) ([]repository.CourseCount, error) {
	ds := r.st.Read()

	counts := make(map[int]int)
	for _, e := range ds.Enrollments {
		if e.Status != model.EnrollmentCancelada {
			counts[e.CourseID]++
		}
	}

	result := make([]repository.CourseCount, 0, len(ds.Courses))
	for _, c := range ds.Courses {
		result = append(result, repository.CourseCount{Curso: c.Nome, Alunos: counts[c.ID]})
	}
	return result, nil
}
