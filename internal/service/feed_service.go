package service

import (
	"errors"
	"strings"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"

	"gorm.io/gorm"
)

// FeedService 负责六种帖子流视图的组装：
// 全站、标签、搜索、分组、个人主页、关注流，外加作者榜单。
type FeedService struct {
	posts  interfaces.PostRepository
	groups interfaces.GroupRepository
	tags   interfaces.TagRepository
	users  interfaces.UserRepository
}

func NewFeedService(
	posts interfaces.PostRepository,
	groups interfaces.GroupRepository,
	tags interfaces.TagRepository,
	users interfaces.UserRepository,
) *FeedService {
	return &FeedService{posts: posts, groups: groups, tags: tags, users: users}
}

// Index 全站流；tagSlug 非空时按标签过滤，slug 不存在算 404
func (s *FeedService) Index(page int, tagSlug string) (*PostPage, *model.Tag, error) {
	if tagSlug == "" {
		total, err := s.posts.CountAll()
		if err != nil {
			return nil, nil, err
		}
		page, pages := clampPage(page, total, PostsPerPage)
		items, err := s.posts.ListAll((page-1)*PostsPerPage, PostsPerPage)
		if err != nil {
			return nil, nil, err
		}
		return newPostPage(items, page, pages, total), nil, nil
	}

	tag, err := s.tags.FindBySlug(tagSlug)
	if err != nil {
		return nil, nil, notFound(err)
	}
	total, err := s.posts.CountByTag(tag.ID)
	if err != nil {
		return nil, nil, err
	}
	page, pages := clampPage(page, total, PostsPerPage)
	items, err := s.posts.ListByTag(tag.ID, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, nil, err
	}
	return newPostPage(items, page, pages, total), tag, nil
}

// Search 正文大小写不敏感子串搜索。
// 空查询直接回空页，不退化成全站流。
func (s *FeedService) Search(query string, page int) (*PostPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return newPostPage(nil, 1, 1, 0), nil
	}
	total, err := s.posts.CountSearch(query)
	if err != nil {
		return nil, err
	}
	page, pages := clampPage(page, total, PostsPerPage)
	items, err := s.posts.Search(query, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, err
	}
	return newPostPage(items, page, pages, total), nil
}

// Group 分组流，slug 解析不到算 404
func (s *FeedService) Group(slug string, page int) (*model.Group, *PostPage, error) {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		return nil, nil, notFound(err)
	}
	total, err := s.posts.CountByGroup(group.ID)
	if err != nil {
		return nil, nil, err
	}
	page, pages := clampPage(page, total, PostsPerPage)
	items, err := s.posts.ListByGroup(group.ID, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, nil, err
	}
	return group, newPostPage(items, page, pages, total), nil
}

// Profile 个人主页流，用户名解析不到算 404
func (s *FeedService) Profile(username string, page int) (*model.User, *PostPage, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, nil, notFound(err)
	}
	total, err := s.posts.CountByAuthor(author.ID)
	if err != nil {
		return nil, nil, err
	}
	page, pages := clampPage(page, total, PostsPerPage)
	items, err := s.posts.ListByAuthor(author.ID, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, nil, err
	}
	return author, newPostPage(items, page, pages, total), nil
}

// Following 关注流，路由层保证只有登录用户能进来
func (s *FeedService) Following(userID uint64, page int) (*PostPage, error) {
	total, err := s.posts.CountFollowing(userID)
	if err != nil {
		return nil, err
	}
	page, pages := clampPage(page, total, PostsPerPage)
	items, err := s.posts.ListFollowing(userID, (page-1)*PostsPerPage, PostsPerPage)
	if err != nil {
		return nil, err
	}
	return newPostPage(items, page, pages, total), nil
}

// AuthorsBoard 作者榜单页。榜首字段在没有可参评用户时为 nil，
// handler 直接省略，不会去取空集合的第一个元素。
type AuthorsBoard struct {
	Page         *AuthorPage   `json:"page"`
	PostsKing    *model.Author `json:"posts_king,omitempty"`
	CommentsKing *model.Author `json:"comments_king,omitempty"`
}

func (s *FeedService) Authors(page int) (*AuthorsBoard, error) {
	total, err := s.users.CountAuthors(ReservedUsernames)
	if err != nil {
		return nil, err
	}
	page, pages := clampPage(page, total, AuthorsPerPage)
	items, err := s.users.ListAuthors(ReservedUsernames, (page-1)*AuthorsPerPage, AuthorsPerPage)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Author{}
	}
	board := &AuthorsBoard{
		Page: &AuthorPage{
			Items:   items,
			Number:  page,
			Pages:   pages,
			Total:   total,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}
	if board.PostsKing, err = s.users.TopPoster(ReservedUsernames); err != nil {
		return nil, err
	}
	if board.CommentsKing, err = s.users.TopCommenter(ReservedUsernames); err != nil {
		return nil, err
	}
	return board, nil
}

// Groups 全部分组列表
func (s *FeedService) Groups() ([]model.Group, error) {
	return s.groups.List()
}

// notFound 把 gorm 的查无记录翻译成领域层 404
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkg.ErrNotFound
	}
	return err
}
