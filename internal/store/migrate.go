package store

import (
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

// Passo de migração/backfill: traz um blob de qualquer versão anterior do
// schema para o formato atual, in place e de forma idempotente. O retorno
// indica se algo mudou e o blob precisa ser regravado; rodar duas vezes
// sobre um grafo já migrado não produz nenhuma mudança.

// migrate executa o passo completo de backfill sobre o dataset.
// recomputeGrades controla a reconciliação de notas existentes com a fórmula
// determinística (ligado, edições manuais de valor são sobrescritas na
// próxima leitura; desligado, apenas notas faltantes são preenchidas).
func migrate(ds *model.Dataset, recomputeGrades bool) bool {
	changed := false

	// ── Turmas: blobs antigos não as têm ──
	if len(ds.Turmas) == 0 {
		ds.Turmas = defaultTurmas()
		changed = true
	}

	// coleções mais novas ausentes viram vazias (não marca mudança por si só)
	if ds.Materiais == nil {
		ds.Materiais = []model.Material{}
	}
	if ds.Activities == nil {
		ds.Activities = []model.Activity{}
	}
	if ds.Submissions == nil {
		ds.Submissions = []model.ActivitySubmission{}
	}
	if ds.Grades == nil {
		ds.Grades = []model.Grade{}
	}

	// ── Atividades: garantir 3 por curso quando o curso não tem nenhuma ──
	nextActivityID := ds.NextActivityID()
	for _, c := range ds.Courses {
		has := false
		for _, a := range ds.Activities {
			if a.CourseID == c.ID {
				has = true
				break
			}
		}
		if !has {
			ds.Activities = append(ds.Activities, courseActivities(&nextActivityID, c)...)
			changed = true
		}
	}

	// ── Entregas e notas por matrícula ──
	nextSubmissionID := ds.NextSubmissionID()
	nextGradeID := ds.NextGradeID()
	for _, e := range ds.Enrollments {
		// uma entrega por atividade do curso
		var acts []model.Activity
		for _, a := range ds.Activities {
			if a.CourseID == e.CourseID {
				acts = append(acts, a)
			}
		}
		for _, a := range acts {
			exists := false
			for _, s := range ds.Submissions {
				if s.ActivityID == a.ID && s.StudentID == e.StudentID {
					exists = true
					break
				}
			}
			if !exists {
				sub := model.ActivitySubmission{
					ID:         nextSubmissionID,
					ActivityID: a.ID,
					StudentID:  e.StudentID,
					Entregue:   delivered(a.ID, e.StudentID),
				}
				if sub.Entregue {
					at := DeliveredAt(a.ID, e.StudentID)
					sub.EntregueEm = &at
				}
				ds.Submissions = append(ds.Submissions, sub)
				nextSubmissionID++
				changed = true
			}
		}

		// notas alinhadas à razão de atividades entregues
		actIDs := make(map[int]bool, len(acts))
		for _, a := range acts {
			actIDs[a.ID] = true
		}
		done := 0
		for _, s := range ds.Submissions {
			if s.StudentID == e.StudentID && actIDs[s.ActivityID] && s.Entregue {
				done++
			}
		}
		ratio := 0.0
		if len(acts) > 0 {
			ratio = float64(done) / float64(len(acts))
		}
		v1, v2 := gradePair(e.StudentID, e.CourseID, ratio)

		var existing []*model.Grade
		for i := range ds.Grades {
			if ds.Grades[i].StudentID == e.StudentID && ds.Grades[i].CourseID == e.CourseID {
				existing = append(existing, &ds.Grades[i])
			}
		}
		switch {
		case len(existing) >= 2:
			if recomputeGrades {
				if existing[0].Valor != v1 {
					existing[0].Valor = v1
					changed = true
				}
				if existing[1].Valor != v2 {
					existing[1].Valor = v2
					changed = true
				}
				existing[0].Data = gradeDate1
				existing[1].Data = gradeDate2
			}
		case len(existing) == 1:
			if recomputeGrades && existing[0].Valor != v1 {
				existing[0].Valor = v1
			}
			ds.Grades = append(ds.Grades, model.Grade{
				ID: nextGradeID, StudentID: e.StudentID, CourseID: e.CourseID, Valor: v2, Data: gradeDate2,
			})
			nextGradeID++
			changed = true
		default:
			ds.Grades = append(ds.Grades,
				model.Grade{ID: nextGradeID, StudentID: e.StudentID, CourseID: e.CourseID, Valor: v1, Data: gradeDate1},
				model.Grade{ID: nextGradeID + 1, StudentID: e.StudentID, CourseID: e.CourseID, Valor: v2, Data: gradeDate2},
			)
			nextGradeID += 2
			changed = true
		}
	}

	return changed
}
