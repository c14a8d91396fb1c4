package localstore

import (
	"context"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type courseRepo struct {
	st *store.Store
}

func (r *courseRepo) List(_ context.Context) ([]model.Course, error) {
	return r.st.Read().Courses, nil
}

func (r *courseRepo) GetByID(_ context.Context, id int) (*model.Course, error) {
	for _, c := range r.st.Read().Courses {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *courseRepo) Create(_ context.Context, c *model.Course) error {
	r.st.Mutate(func(ds *model.Dataset) {
		c.ID = ds.NextCourseID()
		ds.Courses = append(ds.Courses, *c)
	})
	return nil
}

func (r *courseRepo) Update(_ context.Context, c *model.Course) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		for i := range ds.Courses {
			if ds.Courses[i].ID == c.ID {
				ds.Courses[i] = *c
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

// Delete remove o curso; matrículas e materiais do curso permanecem
// (sem cascata no backend local)
func (r *courseRepo) Delete(_ context.Context, id int) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		kept := ds.Courses[:0]
		for _, c := range ds.Courses {
			if c.ID == id {
				found = true
				continue
			}
			kept = append(kept, c)
		}
		ds.Courses = kept
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}
