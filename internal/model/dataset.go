package model

// Dataset é o grafo completo de entidades serializado como um único blob
// pelo backend local. As coleções marcadas como ponteiro/opcional foram
// adicionadas em versões posteriores do schema; ausência no blob persistido
// significa "precisa de backfill", não erro.
type Dataset struct {
	Students    []Student            `json:"students"`
	Courses     []Course             `json:"courses"`
	Enrollments []Enrollment         `json:"enrollments"`
	Turmas      []Turma              `json:"turmas,omitempty"`
	Materiais   []Material           `json:"materiais,omitempty"`
	Grades      []Grade              `json:"grades,omitempty"`
	Activities  []Activity           `json:"activities,omitempty"`
	Submissions []ActivitySubmission `json:"submissions,omitempty"`
	Seeded      bool                 `json:"seeded,omitempty"`
}

// NextStudentID próximo id de aluno (max existente + 1; ids nunca são reusados)
func (d *Dataset) NextStudentID() int {
	max := 0
	for _, s := range d.Students {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// NextCourseID próximo id de curso
func (d *Dataset) NextCourseID() int {
	max := 0
	for _, c := range d.Courses {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// NextEnrollmentID próximo id de matrícula
func (d *Dataset) NextEnrollmentID() int {
	max := 0
	for _, e := range d.Enrollments {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// NextTurmaID próximo id de turma
func (d *Dataset) NextTurmaID() int {
	max := 0
	for _, t := range d.Turmas {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// NextMaterialID próximo id de material
func (d *Dataset) NextMaterialID() int {
	max := 0
	for _, m := range d.Materiais {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}

// NextActivityID próximo id de atividade
func (d *Dataset) NextActivityID() int {
	max := 0
	for _, a := range d.Activities {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

// NextSubmissionID próximo id de entrega
func (d *Dataset) NextSubmissionID() int {
	max := 0
	for _, s := range d.Submissions {
		if s.ID > max {
			max = s.ID
		}
	}
	return max + 1
}

// NextGradeID próximo id de nota
func (d *Dataset) NextGradeID() int {
	max := 0
	for _, g := range d.Grades {
		if g.ID > max {
			max = g.ID
		}
	}
	return max + 1
}
