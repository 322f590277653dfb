package pkg

import "errors"

// 领域层统一错误。handler 按约定转换：
// ErrNotFound -> 404；ErrNotOwner -> 302 跳回详情页；ErrSelfAction -> 静默忽略。
var (
	ErrNotFound   = errors.New("resource not found")
	ErrNotOwner   = errors.New("not resource owner")
	ErrSelfAction = errors.New("self action ignored")
)
