package service

import (
	"errors"
	"strings"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"
)

type GroupService struct {
	repo interfaces.GroupRepository
}

func NewGroupService(repo interfaces.GroupRepository) *GroupService {
	return &GroupService{repo: repo}
}

// Create 建分组；slug 不传就从标题生成，唯一性由数据库索引保证
func (s *GroupService) Create(title, slug, description string) (*model.Group, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title required")
	}
	if slug == "" {
		slug = pkg.Slugify(title)
	}
	group := &model.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	if err := s.repo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) List() ([]model.Group, error) {
	return s.repo.List()
}

// Delete 按 slug 删分组，分组下的帖子保留（group_id 置空）
func (s *GroupService) Delete(slug string) error {
	group, err := s.repo.FindBySlug(slug)
	if err != nil {
		return notFound(err)
	}
	return s.repo.Delete(group.ID)
}
