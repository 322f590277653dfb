package service

import (
	"errors"
	"strings"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"
)

type CommentService struct {
	comments interfaces.CommentRepository
	posts    interfaces.PostRepository
}

func NewCommentService(comments interfaces.CommentRepository, posts interfaces.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

func (s *CommentService) Add(userID, postID uint64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text required")
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		return nil, notFound(err)
	}
	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete 返回所属帖子ID，handler 无论成败都要跳回详情页。
// 非作者删除不报错，只是不删（ErrNotOwner 翻译成跳转）。
func (s *CommentService) Delete(userID, commentID uint64) (uint64, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return 0, notFound(err)
	}
	if comment.AuthorID != userID {
		return comment.PostID, pkg.ErrNotOwner
	}
	if err := s.comments.Delete(commentID); err != nil {
		return comment.PostID, err
	}
	return comment.PostID, nil
}
