package localstore

import (
	"context"
	"time"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/repository"
	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/store"
)

type materialRepo struct {
	st *store.Store
}

func (r *materialRepo) ListByCourse(_ context.Context, courseID int) ([]model.Material, error) {
	var result []model.Material
	for _, m := range r.st.Read().Materiais {
		if m.CourseID == courseID {
			result = append(result, m)
		}
	}
	return result, nil
}

func (r *materialRepo) Create(_ context.Context, m *model.Material) error {
	if m.CriadoEm == "" {
		m.CriadoEm = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	}
	r.st.Mutate(func(ds *model.Dataset) {
		m.ID = ds.NextMaterialID()
		ds.Materiais = append(ds.Materiais, *m)
	})
	return nil
}

func (r *materialRepo) Delete(_ context.Context, id int) error {
	found := false
	r.st.Mutate(func(ds *model.Dataset) {
		kept := ds.Materiais[:0]
		for _, m := range ds.Materiais {
			if m.ID == id {
				found = true
				continue
			}
			kept = append(kept, m)
		}
		ds.Materiais = kept
	})
	if !found {
		return repository.ErrNotFound
	}
	return nil
}
