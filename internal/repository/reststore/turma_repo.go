package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type turmaRepo struct {
	c *Client
}

func (r *turmaRepo) List(ctx context.Context) ([]model.Turma, error) {
	var turmas []model.Turma
	if err := r.c.do(ctx, http.MethodGet, "/api/turmas/", nil, &turmas); err != nil {
		return nil, err
	}
	return turmas, nil
}

func (r *turmaRepo) GetByID(ctx context.Context, id int) (*model.Turma, error) {
	var t model.Turma
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/turmas/%d/", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *turmaRepo) Create(ctx context.Context, t *model.Turma) error {
	return r.c.do(ctx, http.MethodPost, "/api/turmas/", t, t)
}

func (r *turmaRepo) Update(ctx context.Context, t *model.Turma) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/turmas/%d/", t.ID), t, t)
}

func (r *turmaRepo) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/turmas/%d/", id), nil, nil)
}
