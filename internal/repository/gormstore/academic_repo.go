package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type academicRepo struct {
	db *gorm.DB
}

func (r *academicRepo) ActivitiesByCourse(ctx context.Context, courseID int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&activities).Error
	return activities, err
}

func (r *academicRepo) CreateActivity(ctx context.Context, a *model.Activity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "activities")
		if err != nil {
			return err
		}
		a.ID = id
		return tx.Create(a).Error
	})
}

func (r *academicRepo) SubmissionsByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.ActivitySubmission, error) {
	var submissions []model.ActivitySubmission
	err := r.db.WithContext(ctx).
		Joins("JOIN activities ON activities.id = submissions.activity_id").
		Where("submissions.student_id = ? AND activities.course_id = ?", studentID, courseID).
		Order("submissions.id").
		Find(&submissions).Error
	return submissions, err
}

func (r *academicRepo) SetSubmissionEntregue(ctx context.Context, activityID, studentID int, entregue bool) error {
	updates := map[string]interface{}{"entregue": entregue, "entregue_em": nil}
	if entregue {
		updates["entregue_em"] = store.DeliveredAt(activityID, studentID)
	}
	res := r.db.WithContext(ctx).Model(&model.ActivitySubmission{}).
		Where("activity_id = ? AND student_id = ?", activityID, studentID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *academicRepo) GradesByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.Grade, error) {
	var grades []model.Grade
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Order("id").
		Find(&grades).Error
	return grades, err
}

func (r *academicRepo) UpdateGradeValor(ctx context.Context, gradeID, valor int) error {
	res := r.db.WithContext(ctx).Model(&model.Grade{}).
		Where("id = ?", gradeID).
		Update("valor", valor)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
