package localstore

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type turmaRepo struct {
	st *store.Store
}

func (r *turmaRepo) List(_ context.Context) ([]model.Turma, error) {
	return r.st.Read().Turmas, nil
}

func (r *turmaRepo) GetByID(_ context.Context, id int) (*model.Turma, error) {
	for _, t := range r.st.Read().Turmas {
		if t.ID == id {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *turmaRepo) Create(_ context.Context, t *model.Turma) error {
	r.st.Mutate(func(ds *model.Dataset) {
		t.ID = ds.NextTurmaID()
		ds.Turmas = append(ds.Turmas, *t)
	})
	return nil
}

func (r *turmaRepo) Update(_ context.Context, t *model.Turma) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		for i := range ds.Turmas {
			if ds.Turmas[i].ID == t.ID {
				ds.Turmas[i] = *t
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

func (r *turmaRepo) Delete(_ context.Context, id int) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		kept := ds.Turmas[:0]
		for _, t := range ds.Turmas {
			if t.ID == id {
				found = true
				continue
			}
			kept = append(kept, t)
		}
		ds.Turmas = kept
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}
