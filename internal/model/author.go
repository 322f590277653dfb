package model

// Author 作者榜单行，posts_qty / comments_qty 来自聚合查询
type Author struct {
	ID          uint64 `json:"id"`
	Username    string `json:"username"`
	PostsQty    int64  `json:"posts_qty"`
	CommentsQty int64  `json:"comments_qty,omitempty"`
}
