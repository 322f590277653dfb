package interfaces

import "Vega_Blog/internal/model"

type CommentRepository interface {
	Create(comment *model.Comment) error
	FindByID(id uint64) (*model.Comment, error)
	// ListByPost 评论按时间倒序
	ListByPost(postID uint64) ([]model.Comment, error)
	Delete(id uint64) error
}
