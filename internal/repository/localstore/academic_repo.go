package localstore

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type academicRepo struct {
	st *store.Store
}

func (r *academicRepo) ActivitiesByCourse(_ context.Context, courseID int) ([]model.Activity, error) {
	var result []model.Activity
	for _, a := range r.st.Read().Activities {
		if a.CourseID == courseID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (r *academicRepo) CreateActivity(_ context.Context, a *model.Activity) error {
	r.st.Mutate(func(ds *model.Dataset) {
		a.ID = ds.NextActivityID()
		ds.Activities = append(ds.Activities, *a)
	})
	return nil
}

// SubmissionsByStudentCourse entregas do aluno cujas atividades pertencem ao curso
func (r *academicRepo) SubmissionsByStudentCourse(_ context.Context, studentID, courseID int) ([]model.ActivitySubmission, error) {
	ds := r.st.Read()

	actIDs := make(map[int]bool)
	for _, a := range ds.Activities {
		if a.CourseID == courseID {
			actIDs[a.ID] = true
		}
	}

	var result []model.ActivitySubmission
	for _, s := range ds.Submissions {
		if s.StudentID == studentID && actIDs[s.ActivityID] {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *academicRepo) SetSubmissionEntregue(_ context.Context, activityID, studentID int, entregue bool) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		for i := range ds.Submissions {
			s := &ds.Submissions[i]
			if s.ActivityID == activityID && s.StudentID == studentID {
				s.Entregue = entregue
				s.EntregueEm = nil
				if entregue {
					at := store.DeliveredAt(activityID, studentID)
					s.EntregueEm = &at
				}
				found = true
				return
			}
		}
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}

func (r *academicRepo) GradesByStudentCourse(_ context.Context, studentID, courseID int) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range r.st.Read().Grades {
		if g.StudentID == studentID && g.CourseID == courseID {
			result = append(result, g)
		}
	}
	return result, nil
}

// UpdateGradeValor altera o valor de uma nota. Com recompute_grades ligado,
// a próxima leitura do blob sobrescreve o valor de volta para o da fórmula.
func (r *academicRepo) UpdateGradeValor(_ context.Context, gradeID, valor int) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		for i := range ds.Grades {
			if ds.Grades[i].ID == gradeID {
				ds.Grades[i].Valor = valor
				found = true
				return
			}
		}
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}
