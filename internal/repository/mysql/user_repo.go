package mysql

import (
	"Vega_Blog/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// CreateWithProfile 用户和资料放在同一个事务，资料不靠任何钩子补建
func (r *UserRepository) CreateWithProfile(user *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&model.Profile{UserID: user.ID}).Error
	})
}

func (r *UserRepository) FindByID(id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) GetProfile(userID uint64) (*model.Profile, error) {
	var profile model.Profile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *UserRepository) UpdateProfile(profile *model.Profile) error {
	return r.DB.Save(profile).Error
}

func (r *UserRepository) CountAuthors(exclude []string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("username NOT IN ?", exclude).
		Count(&count).Error
	return count, err
}

// ListAuthors 按发帖数倒序，数量相同按 id 升序稳定排序
func (r *UserRepository) ListAuthors(exclude []string, offset, limit int) ([]model.Author, error) {
	var list []model.Author
	err := r.DB.Model(&model.User{}).
		Select("users.id, users.username, COUNT(posts.id) AS posts_qty").
		Joins("LEFT JOIN posts ON posts.author_id = users.id").
		Where("users.username NOT IN ?", exclude).
		Group("users.id, users.username").
		Order("posts_qty DESC, users.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(&list).Error
	return list, err
}

// TopPoster 发帖数第一名；没有可参评的用户时返回 nil
func (r *UserRepository) TopPoster(exclude []string) (*model.Author, error) {
	list, err := r.ListAuthors(exclude, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// TopCommenter 评论数第一名；没有可参评的用户时返回 nil
func (r *UserRepository) TopCommenter(exclude []string) (*model.Author, error) {
	var list []model.Author
	err := r.DB.Model(&model.User{}).
		Select("users.id, users.username, COUNT(comments.id) AS comments_qty").
		Joins("LEFT JOIN comments ON comments.author_id = users.id").
		Where("users.username NOT IN ?", exclude).
		Group("users.id, users.username").
		Order("comments_qty DESC, users.id ASC").
		Limit(1).
		Scan(&list).Error
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}
