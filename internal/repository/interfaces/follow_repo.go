package interfaces

import "context"

// FollowRepository 关注关系。写操作带 ctx，插入用唯一索引兜底去重。
// changed 表示本次调用是否真的改了状态（幂等命中时为 false）。
type FollowRepository interface {
	Follow(ctx context.Context, userID, authorID uint64) (changed bool, err error)
	Unfollow(ctx context.Context, userID, authorID uint64) (changed bool, err error)
	IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error)
}

// LikeRepository 点赞关系，约定同 FollowRepository
type LikeRepository interface {
	Like(ctx context.Context, userID, postID uint64) (changed bool, err error)
	Unlike(ctx context.Context, userID, postID uint64) (changed bool, err error)
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)
	CountByPost(ctx context.Context, postID uint64) (int64, error)
}
