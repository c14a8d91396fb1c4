package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
)

type enrollmentRepo struct {
	db *gorm.DB
}

func (r *enrollmentRepo) List(ctx context.Context) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).Order("id").Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int) (*model.Enrollment, error) {
	var e model.Enrollment
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *enrollmentRepo) Create(ctx context.Context, e *model.Enrollment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "enrollments")
		if err != nil {
			return err
		}
		e.ID = id
		return tx.Create(e).Error
	})
}

func (r *enrollmentRepo) RemoveByStudentCourse(ctx context.Context, studentID, courseID int) (int, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.Enrollment{})
	return int(res.RowsAffected), res.Error
}

// joinedRow linha intermediária do join; nomes nulos viram placeholder
type joinedRow struct {
	model.Enrollment
	AlunoNome *string
	CursoNome *string
}

func (r *enrollmentRepo) ListJoined(ctx context.Context) ([]repository.EnrollmentJoined, error) {
	var rows []joinedRow
	err := r.db.WithContext(ctx).
		Table("enrollments").
		Select("enrollments.*, students.nome AS aluno_nome, courses.nome AS curso_nome").
		Joins("LEFT JOIN students ON students.id = enrollments.student_id").
		Joins("LEFT JOIN courses ON courses.id = enrollments.course_id").
		Order("enrollments.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	joined := make([]repository.EnrollmentJoined, 0, len(rows))
	for _, row := range rows {
		j := repository.EnrollmentJoined{Enrollment: row.Enrollment, Aluno: "—", Curso: "—"}
		if row.AlunoNome != nil {
			j.Aluno = *row.AlunoNome
		}
		if row.CursoNome != nil {
			j.Curso = *row.CursoNome
		}
		joined = append(joined, j)
	}
	return joined, nil
}

func (r *enrollmentRepo) CountByCourse(ctx context.Context, courseID int) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("course_id = ? AND status <> ?", courseID, model.EnrollmentCancelada).
		Count(&count).Error
	return int(count), err
}

func (r *enrollmentRepo) Counts(ctx context.Context) (*repository.Counts, error) {
	var students, courses, active int64

	if err := r.db.WithContext(ctx).Model(&model.Student{}).Count(&students).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&courses).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("status = ?", model.EnrollmentAtiva).Count(&active).Error; err != nil {
		return nil, err
	}

	return &repository.Counts{
		TotalStudents:     int(students),
		TotalCourses:      int(courses),
		ActiveEnrollments: int(active),
	}, nil
}

func (r *enrollmentRepo) StudentsPerCourse(ctx context.Context) ([]repository.CourseCount, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}

	type countRow struct {
		CourseID int
		Total    int
	}
	var rows []countRow
	err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Select("course_id, COUNT(*) AS total").
		Where("status <> ?", model.EnrollmentCancelada).
		Group("course_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.CourseID] = row.Total
	}

	result := make([]repository.CourseCount, 0, len(courses))
	for _, c := range courses {
		result = append(result, repository.CourseCount{Curso: c.Nome, Alunos: counts[c.ID]})
	}
	return result, nil
}
