package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

func setupRepos(t *testing.T) *repository.Repository {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), true, nil)
	return New(st, store.NewMemoryBackend())
}

// ── Alunos ──

func TestStudentCreateAtribuiMaxMaisUm(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	s := &model.Student{Nome: "Novo Aluno", CPF: "000.000.000-00", DataNasc: "2000-01-01"}
	if err := repo.Student.Create(ctx, s); err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if s.ID != 101 {
		t.Fatalf("id do seed vai até 100, novo aluno deve receber 101, veio %d", s.ID)
	}

	// id não é reusado após exclusão do mais alto
	if err := repo.Student.Delete(ctx, 101); err != nil {
		t.Fatalf("Delete falhou: %v", err)
	}
	s2 := &model.Student{Nome: "Outro Aluno", CPF: "111.111.111-11", DataNasc: "2001-02-02"}
	if err := repo.Student.Create(ctx, s2); err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if s2.ID != 101 {
		t.Fatalf("max+1 sobre o restante: esperado 101, veio %d", s2.ID)
	}
}

func TestStudentGetInexistente(t *testing.T) {
	repo := setupRepos(t)

	_, err := repo.Student.GetByID(context.Background(), 9999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("esperado ErrNotFound, veio %v", err)
	}
}

func TestStudentDeleteNaoCascateia(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	before, err := repo.Enrollment.List(ctx)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}

	if err := repo.Student.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete falhou: %v", err)
	}

	after, err := repo.Enrollment.List(ctx)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(after) != len(before) {
		t.Fatalf("exclusão de aluno não remove matrículas: %d → %d", len(before), len(after))
	}
}

// ── Matrículas ──

func TestRemoveByStudentCourseRemoveTodasAsDuplicatas(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	// duas matrículas extras para o mesmo par
	for i := 0; i < 2; i++ {
		e := &model.Enrollment{StudentID: 1, CourseID: 5, DataMatricula: "2024-01-01", Status: model.EnrollmentAtiva}
		if err := repo.Enrollment.Create(ctx, e); err != nil {
			t.Fatalf("Create falhou: %v", err)
		}
	}

	all, _ := repo.Enrollment.List(ctx)
	pairCount := 0
	for _, e := range all {
		if e.StudentID == 1 && e.CourseID == 5 {
			pairCount++
		}
	}
	if pairCount < 2 {
		t.Fatalf("setup deveria ter ao menos 2 matrículas do par, veio %d", pairCount)
	}

	removed, err := repo.Enrollment.RemoveByStudentCourse(ctx, 1, 5)
	if err != nil {
		t.Fatalf("RemoveByStudentCourse falhou: %v", err)
	}
	if removed != pairCount {
		t.Fatalf("esperado %d removidas, veio %d", pairCount, removed)
	}

	all, _ = repo.Enrollment.List(ctx)
	for _, e := range all {
		if e.StudentID == 1 && e.CourseID == 5 {
			t.Fatal("matrícula do par sobreviveu à remoção em massa")
		}
	}
}

func TestCountByCourseIgnoraCanceladas(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	// contagem independente a partir da lista crua
	all, err := repo.Enrollment.List(ctx)
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	want := 0
	for _, e := range all {
		if e.CourseID == 1 && e.Status != model.EnrollmentCancelada {
			want++
		}
	}

	got, err := repo.Enrollment.CountByCourse(ctx, 1)
	if err != nil {
		t.Fatalf("CountByCourse falhou: %v", err)
	}
	if got != want {
		t.Fatalf("esperado %d, veio %d", want, got)
	}
}

func TestCountsDoDashboard(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	counts, err := repo.Enrollment.Counts(ctx)
	if err != nil {
		t.Fatalf("Counts falhou: %v", err)
	}
	if counts.TotalStudents != 100 {
		t.Errorf("alunos: esperado 100, veio %d", counts.TotalStudents)
	}
	if counts.TotalCourses != 10 {
		t.Errorf("cursos: esperado 10, veio %d", counts.TotalCourses)
	}

	all, _ := repo.Enrollment.List(ctx)
	active := 0
	for _, e := range all {
		if e.Status == model.EnrollmentAtiva {
			active++
		}
	}
	if counts.ActiveEnrollments != active {
		t.Errorf("ativas: esperado %d, veio %d", active, counts.ActiveEnrollments)
	}
}

func TestListJoinedUsaPlaceholderParaReferenciaQuebrada(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	// aluno 1 tem matrículas do seed; excluir o aluno deixa referências órfãs
	if err := repo.Student.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete falhou: %v", err)
	}

	joined, err := repo.Enrollment.ListJoined(ctx)
	if err != nil {
		t.Fatalf("ListJoined falhou: %v", err)
	}

	found := false
	for _, j := range joined {
		if j.StudentID == 1 {
			found = true
			if j.Aluno != "—" {
				t.Fatalf("referência quebrada deve virar placeholder, veio %q", j.Aluno)
			}
		}
	}
	if !found {
		t.Fatal("aluno 1 do seed deveria ter matrículas")
	}
}

func TestStudentsPerCourseOrdemDosCursos(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	perCourse, err := repo.Enrollment.StudentsPerCourse(ctx)
	if err != nil {
		t.Fatalf("StudentsPerCourse falhou: %v", err)
	}
	if len(perCourse) != 10 {
		t.Fatalf("esperado 10 cursos, veio %d", len(perCourse))
	}
	if perCourse[0].Curso != "Matemática Básica" {
		t.Errorf("primeiro curso deve seguir a ordem de definição, veio %q", perCourse[0].Curso)
	}

	// validação cruzada com CountByCourse
	for i, cc := range perCourse {
		want, err := repo.Enrollment.CountByCourse(ctx, i+1)
		if err != nil {
			t.Fatalf("CountByCourse falhou: %v", err)
		}
		if cc.Alunos != want {
			t.Errorf("curso %d: gráfico diz %d, contagem direta diz %d", i+1, cc.Alunos, want)
		}
	}
}

// ── Acadêmico ──

func TestSetSubmissionEntregueDerivaData(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	subs, err := repo.Academic.SubmissionsByStudentCourse(ctx, 1, 2)
	if err != nil {
		t.Fatalf("SubmissionsByStudentCourse falhou: %v", err)
	}
	if len(subs) == 0 {
		t.Fatal("aluno 1 deveria ter entregas no curso 2 (matrícula do seed)")
	}

	target := subs[0]
	if err := repo.Academic.SetSubmissionEntregue(ctx, target.ActivityID, target.StudentID, true); err != nil {
		t.Fatalf("SetSubmissionEntregue falhou: %v", err)
	}

	subs, _ = repo.Academic.SubmissionsByStudentCourse(ctx, 1, 2)
	for _, sub := range subs {
		if sub.ActivityID != target.ActivityID {
			continue
		}
		if !sub.Entregue {
			t.Fatal("entrega deveria estar marcada")
		}
		if sub.EntregueEm == nil || *sub.EntregueEm != store.DeliveredAt(sub.ActivityID, sub.StudentID) {
			t.Fatal("data da entrega deve ser derivada da fórmula")
		}
	}

	// desmarcar limpa a data
	if err := repo.Academic.SetSubmissionEntregue(ctx, target.ActivityID, target.StudentID, false); err != nil {
		t.Fatalf("SetSubmissionEntregue falhou: %v", err)
	}
	subs, _ = repo.Academic.SubmissionsByStudentCourse(ctx, 1, 2)
	for _, sub := range subs {
		if sub.ActivityID == target.ActivityID {
			if sub.Entregue || sub.EntregueEm != nil {
				t.Fatal("desmarcar deve limpar entregue e a data")
			}
		}
	}
}

func TestUpdateGradeValorPersisteComRecomputeDesligado(t *testing.T) {
	st := store.New(store.NewMemoryBackend(), false, nil)
	repo := New(st, store.NewMemoryBackend())
	ctx := context.Background()

	grades, err := repo.Academic.GradesByStudentCourse(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GradesByStudentCourse falhou: %v", err)
	}
	if len(grades) != 2 {
		t.Fatalf("esperado 2 notas do seed, veio %d", len(grades))
	}

	if err := repo.Academic.UpdateGradeValor(ctx, grades[0].ID, 87); err != nil {
		t.Fatalf("UpdateGradeValor falhou: %v", err)
	}

	grades, _ = repo.Academic.GradesByStudentCourse(ctx, 1, 2)
	if grades[0].Valor != 87 {
		t.Fatalf("nota editada deve sobreviver a releituras, veio %d", grades[0].Valor)
	}
}

// ── Usuários ──

func TestUserRepoCicloCompleto(t *testing.T) {
	repo := setupRepos(t)
	ctx := context.Background()

	if _, err := repo.User.GetByEmail(ctx, "a@b.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("esperado ErrNotFound, veio %v", err)
	}

	u := &model.User{Name: "Teste", Email: "a@b.com", PasswordHash: "x"}
	if err := repo.User.Create(ctx, u); err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if u.ID != 1 {
		t.Errorf("primeiro usuário deve receber id 1, veio %d", u.ID)
	}
	if u.Role != "aluno" {
		t.Errorf("papel padrão deve ser aluno, veio %q", u.Role)
	}

	// busca é case-insensitive no e-mail
	got, err := repo.User.GetByEmail(ctx, "A@B.COM")
	if err != nil {
		t.Fatalf("GetByEmail falhou: %v", err)
	}
	if got.Name != "Teste" {
		t.Errorf("usuário errado: %q", got.Name)
	}
}
