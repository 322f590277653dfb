package service

import (
	"context"

	"Vega_Blog/internal/repository/interfaces"
)

type LikeService struct {
	repo  interfaces.LikeRepository
	posts interfaces.PostRepository
}

func NewLikeService(repo interfaces.LikeRepository, posts interfaces.PostRepository) *LikeService {
	return &LikeService{repo: repo, posts: posts}
}

// Like 点赞。给自己的帖子点赞静默忽略，重复点赞幂等；
// 帖子不存在才算失败。
func (s *LikeService) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return false, notFound(err)
	}
	if post.AuthorID == userID {
		return false, nil
	}
	return s.repo.Like(ctx, userID, postID)
}

// Unlike 取消点赞，没赞过就是空操作
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	if _, err := s.posts.FindByID(postID); err != nil {
		return false, notFound(err)
	}
	return s.repo.Unlike(ctx, userID, postID)
}

func (s *LikeService) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	return s.repo.IsLiked(ctx, userID, postID)
}
