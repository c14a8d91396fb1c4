package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/Gabriel-Sao-Pedro/Backoffice-de-Gest-o-Escolar/internal/model"
)

type studentRepo struct {
	db *gorm.DB
}

func (r *studentRepo) List(ctx context.Context) ([]model.Student, error) {
	var students []model.Student
	err := r.db.WithContext(ctx).Order("id").Find(&students).Error
	return students, err
}

func (r *studentRepo) GetByID(ctx context.Context, id int) (*model.Student, error) {
	var s model.Student
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r *studentRepo) Create(ctx context.Context, s *model.Student) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, "students")
		if err != nil {
			return err
		}
		s.ID = id
		return tx.Create(s).Error
	})
}

func (r *studentRepo) Update(ctx context.Context, s *model.Student) error {
	res := r.db.WithContext(ctx).Model(&model.Student{ID: s.ID}).Select("*").Omit("id").Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *studentRepo) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&model.Student{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
