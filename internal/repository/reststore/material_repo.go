package reststore

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type materialRepo struct {
	c *Client
}

func (r *materialRepo) ListByCourse(ctx context.Context, courseID int) ([]model.Material, error) {
	var materiais []model.Material
	path := fmt.Sprintf("/api/materiais/?courseId=%d", courseID)
	if err := r.c.do(ctx, http.MethodGet, path, nil, &materiais); err != nil {
		return nil, err
	}
	return materiais, nil
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	return r.c.do(ctx, http.MethodPost, "/api/materiais/", m, m)
}

func (r *materialRepo) Delete(ctx context.Context, id int) error {
	return r.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/materiais/%d/", id), nil, nil)
}
