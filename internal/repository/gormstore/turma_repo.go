package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type turmaRepo struct {
	db *gorm.DB
}

func (r *turmaRepo) List(ctx context.Context) ([]model.Turma, error) {
	var turmas []model.Turma
	err := r.db.WithContext(ctx).Order("id").Find(&turmas).Error
	return turmas, err
}

func (r *turmaRepo) GetByID(ctx context.Context, id int) (*model.Turma, error) {
	var t model.Turma
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *turmaRepo) Create(ctx context.Context, t *model.Turma) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "turmas")
		if err != nil {
			return err
		}
		t.ID = id
		return tx.Create(t).Error
	})
}

func (r *turmaRepo) Update(ctx context.Context, t *model.Turma) error {
	res := r.db.WithContext(ctx).Model(&model.Turma{ID: t.ID}).Select("*").Omit("id").Updates(t)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *turmaRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Turma{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
