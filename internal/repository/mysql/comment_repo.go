package mysql

import (
	"Vega_Blog/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Create(comment).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Preload("Author").First(&comment, id).Error
	return &comment, err
}

// ListByPost 新评论在前，同一时刻按 id 保持插入序
func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id ASC").
		Find(&list).Error
	return list, err
}

func (r *CommentRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
