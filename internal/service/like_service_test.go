package service

import (
	"context"
	"testing"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// TestLike 点赞和重复点赞：幂等命中时 changed 为 false
func TestLike(t *testing.T) {
	repo := new(MockLikeRepository)
	posts := new(MockPostRepository)
	svc := NewLikeService(repo, posts)

	posts.On("FindByID", uint64(10)).Return(&model.Post{ID: 10, AuthorID: 2}, nil)
	repo.On("Like", mock.Anything, uint64(1), uint64(10)).Return(true, nil).Once()
	repo.On("Like", mock.Anything, uint64(1), uint64(10)).Return(false, nil).Once()

	changed, err := svc.Like(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.True(t, changed)

	changed, err = svc.Like(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.False(t, changed)
	repo.AssertExpectations(t)
}

// TestLikeOwnPost 给自己的帖子点赞静默忽略
func TestLikeOwnPost(t *testing.T) {
	repo := new(MockLikeRepository)
	posts := new(MockPostRepository)
	svc := NewLikeService(repo, posts)

	posts.On("FindByID", uint64(10)).Return(&model.Post{ID: 10, AuthorID: 1}, nil)

	changed, err := svc.Like(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.False(t, changed)
	repo.AssertNotCalled(t, "Like", mock.Anything, mock.Anything, mock.Anything)
}

// TestLikeMissingPost 帖子不存在算 404
func TestLikeMissingPost(t *testing.T) {
	posts := new(MockPostRepository)
	svc := NewLikeService(new(MockLikeRepository), posts)

	posts.On("FindByID", uint64(404)).Return(nil, gorm.ErrRecordNotFound)
	_, err := svc.Like(context.Background(), 1, 404)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

// TestUnlike 没赞过就是空操作
func TestUnlike(t *testing.T) {
	repo := new(MockLikeRepository)
	posts := new(MockPostRepository)
	svc := NewLikeService(repo, posts)

	posts.On("FindByID", uint64(10)).Return(&model.Post{ID: 10, AuthorID: 2}, nil)
	repo.On("Unlike", mock.Anything, uint64(1), uint64(10)).Return(false, nil)

	changed, err := svc.Unlike(context.Background(), 1, 10)
	assert.NoError(t, err)
	assert.False(t, changed)
}
