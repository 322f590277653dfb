package mysql

import (
	"Vega_Blog/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.DB.Create(group).Error
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	err := r.DB.Where("slug = ?", slug).First(&group).Error
	return &group, err
}

func (r *GroupRepository) List() ([]model.Group, error) {
	var list []model.Group
	err := r.DB.Order("title ASC").Find(&list).Error
	return list, err
}

// Delete 分组删除不带走帖子：先把帖子的 group_id 置空，再删分组
func (r *GroupRepository) Delete(id uint64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("group_id = ?", id).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, id).Error
	})
}
