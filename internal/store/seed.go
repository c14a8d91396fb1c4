package store

import (
	"fmt"
	"math"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

// Gerador de seed determinístico: popula o dataset inicial inteiro a partir
// de fórmulas sobre os índices, sem nenhuma fonte de aleatoriedade externa.
// O passo de migração recomputa as mesmas fórmulas para preencher dados
// faltantes em blobs antigos, portanto duas invocações devem produzir grafos
// byte-idênticos.

const (
	seedStudents = 100

	// datas fixas das duas avaliações por matrícula
	gradeDate1 = "2024-04-15"
	gradeDate2 = "2024-06-15"

	// criadoEm do material de exemplo (fixo para manter o seed determinístico)
	seedMaterialCriadoEm = "2024-01-01T00:00:00.000Z"
)

// courseDef definição fixa dos dez cursos do seed
type courseDef struct {
	codigo       string
	nome         string
	cargaHoraria int
}

var seedCourses = []courseDef{
	{"MAT101", "Matemática Básica", 60},
	{"PORT101", "Português", 40},
	{"ING101", "Inglês", 80},
	{"CIEN101", "Ciências", 50},
	{"HIST101", "História", 40},
	{"GEO101", "Geografia", 40},
	{"FIS101", "Física", 60},
	{"QUI101", "Química", 60},
	{"BIO101", "Biologia", 60},
	{"RED101", "Redação", 30},
}

func pad(n, size int) string {
	return fmt.Sprintf("%0*d", size, n)
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// dnoise ruído determinístico em [-5, 5) a partir de seed e índice
// (hash senoidal, não um RNG estatístico)
func dnoise(seed, idx int) float64 {
	x := math.Sin(float64(seed)*9301+float64(idx)*49297) * 43758.5453
	frac := x - math.Floor(x)
	return frac*10 - 5
}

// gradePair calcula as duas notas determinísticas de uma matrícula:
// base 55 + até 35 pela razão de atividades entregues, mais perturbação
// senoidal, com clamp em [40,100]
func gradePair(studentID, courseID int, ratio float64) (int, int) {
	seed := studentID*1000 + courseID
	base := 55 + 35*ratio
	v1 := clamp(int(math.Round(base+dnoise(seed, 1))), 40, 100)
	v2 := clamp(int(math.Round(base+dnoise(seed, 2)+3)), 40, 100)
	return v1, v2
}

// delivered regra de paridade da entrega: (activityId + studentId) par
func delivered(activityID, studentID int) bool {
	return (activityID+studentID)%2 == 0
}

// DeliveredAt data derivada da entrega
func DeliveredAt(activityID, studentID int) string {
	return fmt.Sprintf("2024-0%d-0%d", (activityID%6)+1, (studentID%9)+1)
}

// courseActivities as três atividades padrão de um curso
func courseActivities(nextID *int, c model.Course) []model.Activity {
	acts := []model.Activity{
		{ID: *nextID, CourseID: c.ID, Titulo: "Lista 1 - " + c.Codigo, Prazo: "2024-04-01"},
		{ID: *nextID + 1, CourseID: c.ID, Titulo: "Trabalho - " + c.Codigo, Prazo: "2024-05-01"},
		{ID: *nextID + 2, CourseID: c.ID, Titulo: "Projeto - " + c.Codigo, Prazo: "2024-06-01"},
	}
	*nextID += 3
	return acts
}

// defaultTurmas turmas padrão usadas no seed e no backfill de blobs antigos
func defaultTurmas() []model.Turma {
	c1, c2 := 1, 2
	return []model.Turma{
		{ID: 1, Nome: "Turma A - 2024", Ano: 2024, CourseID: &c1},
		{ID: 2, Nome: "Turma B - 2024", Ano: 2024, CourseID: &c2},
	}
}

// Seed produz o dataset inicial completo e determinístico
func Seed() *model.Dataset {
	// ── 100 alunos ──
	students := make([]model.Student, 0, seedStudents)
	for i := 0; i < seedStudents; i++ {
		id := i + 1
		ano := 1990 + (id % 15) // 1991..2004
		students = append(students, model.Student{
			ID:   id,
			Nome: "Aluno " + pad(id, 3),
			CPF: fmt.Sprintf("%s.%s.%s-%s",
				pad(id, 3), pad((id*7)%1000, 3), pad((id*13)%1000, 3), pad((id*17)%100, 2)),
			DataNasc: fmt.Sprintf("%d-%s-%s", ano, pad((id%12)+1, 2), pad((id%28)+1, 2)),
			Celular: fmt.Sprintf("(31) 9%s-%s",
				pad((8000+(id%1000))%10000, 4), pad((7000+(id%1000))%10000, 4)),
			Foto: nil,
		})
	}

	// ── 10 cursos (todo décimo curso inativo) ──
	courses := make([]model.Course, 0, len(seedCourses))
	for idx, def := range seedCourses {
		status := model.CourseAtivo
		if (idx+1)%10 == 0 {
			status = model.CourseInativo
		}
		courses = append(courses, model.Course{
			ID:           idx + 1,
			Codigo:       def.codigo,
			Nome:         def.nome,
			CargaHoraria: def.cargaHoraria,
			Status:       status,
			Descricao:    "",
		})
	}

	// ── Matrículas: cada aluno em 1 a 3 cursos ──
	var enrollments []model.Enrollment
	eid := 1
	for studentID := 1; studentID <= len(students); studentID++ {
		qty := (studentID % 3) + 1
		for j := 0; j < qty; j++ {
			courseID := ((studentID + j) % len(courses)) + 1
			status := model.EnrollmentAtiva
			if (studentID+courseID)%10 == 0 {
				status = model.EnrollmentCancelada
			}
			enrollments = append(enrollments, model.Enrollment{
				ID:        eid,
				StudentID: studentID,
				CourseID:  courseID,
				DataMatricula: fmt.Sprintf("2024-%s-%s",
					pad(((studentID+j)%12)+1, 2), pad(((studentID+j)%28)+1, 2)),
				Status: status,
			})
			eid++
		}
	}

	// ── Material de exemplo ──
	materiais := []model.Material{
		{ID: 1, CourseID: 1, Tipo: model.MaterialLink, Titulo: "Plano de ensino",
			URL: "https://exemplo.com/plano", CriadoEm: seedMaterialCriadoEm},
	}

	// ── Atividades: 3 por curso ──
	var activities []model.Activity
	actID := 1
	for _, c := range courses {
		activities = append(activities, courseActivities(&actID, c)...)
	}

	// ── Entregas e notas por matrícula ──
	var submissions []model.ActivitySubmission
	var grades []model.Grade
	subID, gradeID := 1, 1
	for _, e := range enrollments {
		deliveredCount := 0
		total := 0
		for _, a := range activities {
			if a.CourseID != e.CourseID {
				continue
			}
			total++
			sub := model.ActivitySubmission{
				ID:         subID,
				ActivityID: a.ID,
				StudentID:  e.StudentID,
				Entregue:   delivered(a.ID, e.StudentID),
			}
			if sub.Entregue {
				deliveredCount++
				at := DeliveredAt(a.ID, e.StudentID)
				sub.EntregueEm = &at
			}
			submissions = append(submissions, sub)
			subID++
		}

		ratio := 0.0
		if total > 0 {
			ratio = float64(deliveredCount) / float64(total)
		}
		v1, v2 := gradePair(e.StudentID, e.CourseID, ratio)
		grades = append(grades,
			model.Grade{ID: gradeID, StudentID: e.StudentID, CourseID: e.CourseID, Valor: v1, Data: gradeDate1},
			model.Grade{ID: gradeID + 1, StudentID: e.StudentID, CourseID: e.CourseID, Valor: v2, Data: gradeDate2},
		)
		gradeID += 2
	}

	return &model.Dataset{
		Students:    students,
		Courses:     courses,
		Enrollments: enrollments,
		Turmas:      defaultTurmas(),
		Materiais:   materiais,
		Grades:      grades,
		Activities:  activities,
		Submissions: submissions,
		Seeded:      true,
	}
}
