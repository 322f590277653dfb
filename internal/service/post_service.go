package service

import (
	"context"
	"errors"
	"strings"

	"Vega_Blog/internal/model"
	"Vega_Blog/internal/pkg"
	"Vega_Blog/internal/repository/interfaces"
)

type PostService struct {
	posts    interfaces.PostRepository
	comments interfaces.CommentRepository
	likes    interfaces.LikeRepository
}

func NewPostService(
	posts interfaces.PostRepository,
	comments interfaces.CommentRepository,
	likes interfaces.LikeRepository,
) *PostService {
	return &PostService{posts: posts, comments: comments, likes: likes}
}

// PostInput 建帖/改帖的表单数据
type PostInput struct {
	Text    string
	GroupID *uint64
	Image   string
	Tags    []string
}

func (s *PostService) Create(userID uint64, in PostInput) (*model.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.New("text required")
	}
	post := &model.Post{
		Text:     in.Text,
		AuthorID: userID,
		GroupID:  in.GroupID,
		Image:    in.Image,
	}
	if err := s.posts.Create(post, in.Tags); err != nil {
		return nil, err
	}
	return post, nil
}

// PostDetail 详情页数据：帖子、评论（新在前）、点赞数和当前用户是否已赞
type PostDetail struct {
	Post      *model.Post     `json:"post"`
	Comments  []model.Comment `json:"comments"`
	LikeCount int64           `json:"like_count"`
	Liked     bool            `json:"liked"`
}

func (s *PostService) Detail(ctx context.Context, viewerID, postID uint64) (*PostDetail, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	likeCount, err := s.likes.CountByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail := &PostDetail{Post: post, Comments: comments, LikeCount: likeCount}
	// 匿名访客不查点赞状态
	if viewerID != 0 {
		if detail.Liked, err = s.likes.IsLiked(ctx, viewerID, postID); err != nil {
			return nil, err
		}
	}
	return detail, nil
}

// Edit 只有作者能改；其他人拿到 ErrNotOwner，handler 会跳回详情页
func (s *PostService) Edit(userID, postID uint64, in PostInput) (*model.Post, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	if post.AuthorID != userID {
		return nil, pkg.ErrNotOwner
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, errors.New("text required")
	}
	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}
	if err := s.posts.Update(post, in.Tags); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete 只有作者能删；删除会带走帖子的评论和点赞
func (s *PostService) Delete(userID, postID uint64) (*model.Post, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		return nil, notFound(err)
	}
	if post.AuthorID != userID {
		return nil, pkg.ErrNotOwner
	}
	if err := s.posts.Delete(postID); err != nil {
		return nil, err
	}
	return post, nil
}
