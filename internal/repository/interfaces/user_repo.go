package interfaces

import "Vega_Blog/internal/model"

// UserRepository 用户及作者榜单相关的数据库操作
type UserRepository interface {
	// CreateWithProfile 在同一个事务里创建用户和资料
	CreateWithProfile(user *model.User) error
	FindByID(id uint64) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	GetProfile(userID uint64) (*model.Profile, error)
	UpdateProfile(profile *model.Profile) error

	// 作者榜单：排除保留用户名，按发帖数倒序
	CountAuthors(exclude []string) (int64, error)
	ListAuthors(exclude []string, offset, limit int) ([]model.Author, error)
	TopPoster(exclude []string) (*model.Author, error)
	TopCommenter(exclude []string) (*model.Author, error)
}
