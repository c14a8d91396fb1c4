package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type courseRepo struct {
	db *gorm.DB
}

func (r *courseRepo) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Order("id").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByID(ctx context.Context, id int) (*model.Course, error) {
	var c model.Course
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *courseRepo) Create(ctx context.Context, c *model.Course) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "courses")
		if err != nil {
			return err
		}
		c.ID = id
		return tx.Create(c).Error
	})
}

func (r *courseRepo) Update(ctx context.Context, c *model.Course) error {
	res := r.db.WithContext(ctx).Model(&model.Course{ID: c.ID}).Select("*").Omit("id").Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *courseRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
