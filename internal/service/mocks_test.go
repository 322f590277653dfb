package service

import (
	"context"

	"Vega_Blog/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository 是 PostRepository 接口的模拟实现
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *model.Post, tagLabels []string) error {
	args := m.Called(post, tagLabels)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id uint64) (*model.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepository) Update(post *model.Post, tagLabels []string) error {
	args := m.Called(post, tagLabels)
	return args.Error(0)
}

func (m *MockPostRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) CountAll() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListAll(offset, limit int) ([]model.Post, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountByTag(tagID uint64) (int64, error) {
	args := m.Called(tagID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListByTag(tagID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(tagID, offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountByGroup(groupID uint64) (int64, error) {
	args := m.Called(groupID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListByGroup(groupID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(groupID, offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountByAuthor(authorID uint64) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListByAuthor(authorID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(authorID, offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountFollowing(userID uint64) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) ListFollowing(userID uint64, offset, limit int) ([]model.Post, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostRepository) CountSearch(query string) (int64, error) {
	args := m.Called(query)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Search(query string, offset, limit int) ([]model.Post, error) {
	args := m.Called(query, offset, limit)
	return args.Get(0).([]model.Post), args.Error(1)
}

// MockUserRepository 是 UserRepository 接口的模拟实现
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateWithProfile(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint64) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*model.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetProfile(userID uint64) (*model.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(profile *model.Profile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserRepository) CountAuthors(exclude []string) (int64, error) {
	args := m.Called(exclude)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListAuthors(exclude []string, offset, limit int) ([]model.Author, error) {
	args := m.Called(exclude, offset, limit)
	return args.Get(0).([]model.Author), args.Error(1)
}

func (m *MockUserRepository) TopPoster(exclude []string) (*model.Author, error) {
	args := m.Called(exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

func (m *MockUserRepository) TopCommenter(exclude []string) (*model.Author, error) {
	args := m.Called(exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Author), args.Error(1)
}

// MockGroupRepository 是 GroupRepository 接口的模拟实现
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(group *model.Group) error {
	args := m.Called(group)
	return args.Error(0)
}

func (m *MockGroupRepository) FindBySlug(slug string) (*model.Group, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepository) List() ([]model.Group, error) {
	args := m.Called()
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockTagRepository 是 TagRepository 接口的模拟实现
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) FindBySlug(slug string) (*model.Tag, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByLabel(label string) (*model.Tag, error) {
	args := m.Called(label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Tag), args.Error(1)
}

func (m *MockTagRepository) GetOrCreate(labels []string) ([]model.Tag, error) {
	args := m.Called(labels)
	return args.Get(0).([]model.Tag), args.Error(1)
}

// MockCommentRepository 是 CommentRepository 接口的模拟实现
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(comment *model.Comment) error {
	args := m.Called(comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(id uint64) (*model.Comment, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	args := m.Called(postID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(id uint64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockFollowRepository 是 FollowRepository 接口的模拟实现
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Follow(ctx context.Context, userID, authorID uint64) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) Unfollow(ctx context.Context, userID, authorID uint64) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	args := m.Called(ctx, userID, authorID)
	return args.Bool(0), args.Error(1)
}

// MockLikeRepository 是 LikeRepository 接口的模拟实现
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Like(ctx context.Context, userID, postID uint64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) Unlike(ctx context.Context, userID, postID uint64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}
