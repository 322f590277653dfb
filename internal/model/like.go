package model

import "time"

// Like 点赞，(user_id, post_id) 唯一，随帖子级联删除
type Like struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_post"`
	CreatedAt time.Time
}

func (Like) TableName() string {
	return "likes"
}
