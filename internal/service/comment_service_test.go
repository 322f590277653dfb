package service

import (
	"testing"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// TestAddComment 评论挂在存在的帖子上
func TestAddComment(t *testing.T) {
	comments := new(MockCommentRepository)
	posts := new(MockPostRepository)
	svc := NewCommentService(comments, posts)

	posts.On("FindByID", uint64(10)).Return(&model.Post{ID: 10}, nil)
	comments.On("Create", mock.AnythingOfType("*model.Comment")).Return(nil)

	comment, err := svc.Add(1, 10, "nice post")
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), comment.PostID)
	assert.Equal(t, uint64(1), comment.AuthorID)

	_, err = svc.Add(1, 10, "  ")
	assert.Error(t, err)
}

// TestAddCommentMissingPost 帖子不存在算 404
func TestAddCommentMissingPost(t *testing.T) {
	posts := new(MockPostRepository)
	svc := NewCommentService(new(MockCommentRepository), posts)

	posts.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)
	_, err := svc.Add(1, 404, "hello")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// TestDeleteCommentNotOwner 非作者删除不落库，但还是拿到帖子ID用于跳转
func TestDeleteCommentNotOwner(t *testing.T) {
	comments := new(MockCommentRepository)
	svc := NewCommentService(comments, new(MockPostRepository))

	comments.On("FindByID", uint64(5)).Return(&model.Comment{ID: 5, PostID: 10, AuthorID: 2}, nil)

	postID, err := svc.Delete(1, 5)
	assert.ErrorIs(t, err, pkg.ErrNotOwner)
	assert.Equal(t, uint64(10), postID)
	comments.AssertNotCalled(t, "Delete", mock.Anything)
}

// TestDeleteComment 作者删除成功
func TestDeleteComment(t *testing.T) {
	comments := new(MockCommentRepository)
	svc := NewCommentService(comments, new(MockPostRepository))

	comments.On("FindByID", uint64(5)).Return(&model.Comment{ID: 5, PostID: 10, AuthorID: 1}, nil)
	comments.On("Delete", uint64(5)).Return(nil)

	postID, err := svc.Delete(1, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), postID)
	comments.AssertExpectations(t)
}
