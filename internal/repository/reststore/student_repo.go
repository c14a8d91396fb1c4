package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type studentRepo struct {
	c *Client
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	if err := r.c.do(ctx, http.MethodGet, "/api/alunos/", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) GetByID(ctx context.Context, id int) (*model.Student, error) {
	var s model.Student
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/alunos/%d/", id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *studentRepo) Create(ctx context.Context, s *model.Student) error {
	return r.c.do(ctx, http.MethodPost, "/api/alunos/", s, s)
}

func (r *studentRepo) Update(ctx context.Context, s *model.Student) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/alunos/%d/", s.ID), s, s)
}

func (r *studentRepo) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/alunos/%d/", id), nil, nil)
}
