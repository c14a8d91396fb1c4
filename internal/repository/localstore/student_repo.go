package localstore

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type studentRepo struct {
	st *store.Store
}

func (r *studentRepo) List(_ context.Context) ([]model.Student, error) {
	return r.st.Read().Students, nil
}

func (r *studentRepo) GetByID(_ context.Context, id int) (*model.Student, error) {
	for _, s := range r.st.Read().Students {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *studentRepo) Create(_ context.Context, s *model.Student) error {
	r.st.Mutate(func(ds *model.Dataset) {
		s.ID = ds.NextStudentID()
		ds.Students = append(ds.Students, *s)
	})
	return nil
}

func (r *studentRepo) Update(_ context.Context, s *model.Student) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		for i := range ds.Students {
			if ds.Students[i].ID == s.ID {
				ds.Students[i] = *s
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

// Delete remove o aluno; matrículas existentes não são apagadas em cascata
func (r *studentRepo) Delete(_ context.Context, id int) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		kept := ds.Students[:0]
		for _, s := range ds.Students {
			if s.ID == id {
				found = true
				continue
			}
			kept = append(kept, s)
		}
		ds.Students = kept
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}
