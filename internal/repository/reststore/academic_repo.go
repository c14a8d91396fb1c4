package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type academicRepo struct {
	c *Client
}

func (r *academicRepo) ActivitiesByCourse(ctx context.Context, courseID int) ([]model.Activity, error) {
	var activities []model.Activity
	path := fmt.Sprintf("/api/atividades/?courseId=%d", courseID)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *academicRepo) CreateActivity(ctx context.Context, a *model.Activity) error {
	return r.c.do(ctx, http.MethodPost, "/api/atividades/", a, a)
}

func (r *academicRepo) SubmissionsByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.ActivitySubmission, error) {
	var submissions []model.ActivitySubmission
	path := fmt.Sprintf("/api/entregas/?studentId=%d&courseId=%d", studentID, courseID)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *academicRepo) SetSubmissionEntregue(ctx context.Context, activityID, studentID int, entregue bool) error {
	body := map[string]interface{}{
		"activityId": activityID,
		"studentId":  studentID,
		"entregue":   entregue,
	}
	return r.c.do(ctx, http.MethodPatch, "/api/entregas/", body, nil)
}

func (r *academicRepo) GradesByStudentCourse(ctx context.Context, studentID, courseID int) ([]model.Grade, error) {
	var grades []model.Grade
	path := fmt.Sprintf("/api/notas/?studentId=%d&courseId=%d", studentID, courseID)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *academicRepo) UpdateGradeValor(ctx context.Context, gradeID, valor int) error {
	body := map[string]interface{}{"valor": valor}
	return r.c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/notas/%d/", gradeID), body, nil)
}
