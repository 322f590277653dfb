package interfaces

import "Vega_Blog/internal/model"

type GroupRepository interface {
	Create(group *model.Group) error
	FindBySlug(slug string) (*model.Group, error)
	List() ([]model.Group, error)
	// Delete 置空帖子的 group_id 后再删分组，帖子保留
	Delete(id uint64) error
}

type TagRepository interface {
	FindBySlug(slug string) (*model.Tag, error)
	FindByLabel(label string) (*model.Tag, error)
	// GetOrCreate 按 label 批量取或建标签
	GetOrCreate(labels []string) ([]model.Tag, error)
}
