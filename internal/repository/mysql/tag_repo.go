package mysql

import (
	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository struct {
	DB *gorm.DB
}

func (r *TagRepository) FindBySlug(slug string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.Where("slug = ?", slug).First(&tag).Error
	return &tag, err
}

func (r *TagRepository) FindByLabel(label string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.Where("label = ?", label).First(&tag).Error
	return &tag, err
}

// GetOrCreate 幂等建标签：label 撞唯一索引时 DoNothing，再统一捞回来
func (r *TagRepository) GetOrCreate(labels []string) ([]model.Tag, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	tags := make([]model.Tag, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, model.Tag{Label: label, Slug: pkg.Slugify(label)})
	}
	if err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "label"}},
		DoNothing: true,
	}).Create(&tags).Error; err != nil {
		return nil, err
	}

	var out []model.Tag
	if err := r.DB.Where("label IN ?", labels).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
