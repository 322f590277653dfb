package service

import (
	"context"
	"errors"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/repository/interfaces"
)

type FollowService struct {
	repo  interfaces.FollowRepository
	users interfaces.UserRepository
}

func NewFollowService(repo interfaces.FollowRepository, users interfaces.UserRepository) *FollowService {
	return &FollowService{repo: repo, users: users}
}

// Follow 关注 username 对应的作者。自关注和重复关注都静默忽略，
// 调用方只看 changed；作者不存在才算失败。
func (s *FollowService) Follow(ctx context.Context, userID uint64, username string) (*model.User, bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, false, notFound(err)
	}
	if author.ID == userID {
		return author, false, nil
	}
	changed, err := s.repo.Follow(ctx, userID, author.ID)
	return author, changed, err
}

// Unfollow 取消关注，没关注过就是空操作
func (s *FollowService) Unfollow(ctx context.Context, userID uint64, username string) (*model.User, bool, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, false, notFound(err)
	}
	if author.ID == userID {
		return author, false, nil
	}
	changed, err := s.repo.Unfollow(ctx, userID, author.ID)
	return author, changed, err
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 || authorID == 0 {
		return false, errors.New("invalid user id")
	}
	return s.repo.IsFollowing(ctx, userID, authorID)
}
