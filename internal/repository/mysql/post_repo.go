package mysql

import (
	"Vega_Blog/internal/model"

	"gorm.io/gorm"
)

// 统一的流排序：新帖在前，同一时刻按 id 保持插入序
const feedOrder = "posts.created_at DESC, posts.id ASC"

type PostRepository struct {
	DB *gorm.DB
}

// Create 建帖：标签先取或建，再随帖子一起写关联
func (r *PostRepository) Create(post *model.Post, tagLabels []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		tagRepo := &TagRepository{DB: tx}
		tags, err := tagRepo.GetOrCreate(tagLabels)
		if err != nil {
			return err
		}
		post.Tags = tags
		return tx.Create(post).Error
	})
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.
		Preload("Author").
		Preload("Group").
		Preload("Tags").
		First(&post, id).Error
	return &post, err
}

// Update 只改正文、分组、图片和标签，created_at 模型层已锁死
func (r *PostRepository) Update(post *model.Post, tagLabels []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		tagRepo := &TagRepository{DB: tx}
		tags, err := tagRepo.GetOrCreate(tagLabels)
		if err != nil {
			return err
		}
		if err := tx.Model(post).Select("Text", "GroupID", "Image").Updates(map[string]any{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error; err != nil {
			return err
		}
		return tx.Model(post).Association("Tags").Replace(tags)
	})
}

// Delete 级联：评论、点赞、标签关联先删，最后删帖子
func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *PostRepository) ListAll(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByTag(tagID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Count(&count).Error
	return count, err
}

func (r *PostRepository) ListByTag(tagID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Joins("JOIN post_tags ON post_tags.post_id = posts.id").
		Where("post_tags.tag_id = ?", tagID).
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByGroup(groupID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *PostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Where("group_id = ?", groupID).
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountByAuthor(authorID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *PostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountFollowing(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN follow ON follow.author_id = posts.author_id").
		Where("follow.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// ListFollowing 关注流：只看被当前用户关注的作者
func (r *PostRepository) ListFollowing(userID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Joins("JOIN follow ON follow.author_id = posts.author_id").
		Where("follow.user_id = ?", userID).
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) CountSearch(query string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Post{}).
		Where("LOWER(text) LIKE LOWER(?)", "%"+query+"%").
		Count(&count).Error
	return count, err
}

// Search 大小写不敏感的正文子串搜索
func (r *PostRepository) Search(query string, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.feedQuery().
		Where("LOWER(text) LIKE LOWER(?)", "%"+query+"%").
		Order(feedOrder).
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *PostRepository) feedQuery() *gorm.DB {
	return r.DB.Model(&model.Post{}).
		Preload("Author").
		Preload("Group").
		Preload("Tags")
}
