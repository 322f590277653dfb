package interfaces

import "Vega_Blog/internal/model"

// PostRepository 帖子流查询和帖子写操作。
// 各 List* 与 Count* 成对出现，供分页器先取总数再取页。
// 排序约定：created_at DESC，时间相同按 id ASC 保持插入序。
type PostRepository interface {
	Create(post *model.Post, tagLabels []string) error
	FindByID(id uint64) (*model.Post, error)
	Update(post *model.Post, tagLabels []string) error
	// Delete 级联删除评论、点赞和标签关联
	Delete(id uint64) error

	CountAll() (int64, error)
	ListAll(offset, limit int) ([]model.Post, error)

	CountByTag(tagID uint64) (int64, error)
	ListByTag(tagID uint64, offset, limit int) ([]model.Post, error)

	CountByGroup(groupID uint64) (int64, error)
	ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error)

	CountByAuthor(authorID uint64) (int64, error)
	ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error)

	// 关注流：作者被 userID 关注的全部帖子
	CountFollowing(userID uint64) (int64, error)
	ListFollowing(userID uint64, offset, limit int) ([]model.Post, error)

	// 正文大小写不敏感子串搜索
	CountSearch(query string) (int64, error)
	Search(query string, offset, limit int) ([]model.Post, error)
}
