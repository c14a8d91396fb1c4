package gormstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type materialRepo struct {
	db *gorm.DB
}

func (r *materialRepo) ListByCourse(ctx context.Context, courseID int) ([]model.Material, error) {
	var materiais []model.Material
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).Order("id").Find(&materiais).Error
	return materiais, err
}

func (r *materialRepo) Create(ctx context.Context, m *model.Material) error {
	if m.CriadoEm == "" {
		m.CriadoEm = time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "materiais")
		if err != nil {
			return err
		}
		m.ID = id
		return tx.Create(m).Error
	})
}

func (r *materialRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Material{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
