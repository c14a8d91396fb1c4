package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type courseRepo struct {
	c *Client
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.c.do(ctx, http.MethodGet, "/api/cursos/", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByID(ctx context.Context, id int) (*model.Course, error) {
	var c model.Course
	if err := r.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cursos/%d/", id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	return r.c.do(ctx, http.MethodPost, "/api/cursos/", c, c)
}

func (r *courseRepo) Update(ctx context.Context, c *model.Course) error {
	return r.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cursos/%d/", c.ID), c, c)
}

func (r *courseRepo) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cursos/%d/", id), nil, nil)
}
