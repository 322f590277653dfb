package service

import "Vega_Blog/internal/model"

// 页面布局常量
const (
	PostsPerPage   = 10
	AuthorsPerPage = 20
)

// ReservedUsernames 管理用账号，不进作者榜单
var ReservedUsernames = []string{"admin", "superadmin"}

type PostPage struct {
	Items   []model.Post `json:"items"`
	Number  int          `json:"page"`
	Pages   int          `json:"pages"`
	Total   int64        `json:"total"`
	HasNext bool         `json:"has_next"`
	HasPrev bool         `json:"has_prev"`
}

type AuthorPage struct {
	Items   []model.Author `json:"items"`
	Number  int            `json:"page"`
	Pages   int            `json:"pages"`
	Total   int64          `json:"total"`
	HasNext bool           `json:"has_next"`
	HasPrev bool           `json:"has_prev"`
}

// clampPage 页码越界不报错：小于 1 取第一页，超过末页取末页。
// 空集合也算一页（空页），返回 (页码, 总页数)。
func clampPage(page int, total int64, size int) (int, int) {
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	return page, pages
}

func newPostPage(items []model.Post, page, pages int, total int64) *PostPage {
	if items == nil {
		items = []model.Post{}
	}
	return &PostPage{
		Items:   items,
		Number:  page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
