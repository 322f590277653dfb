package model

import "time"

// Comment 评论，随帖子级联删除
type Comment struct {
	ID        uint64    `gorm:"primaryKey"`
	PostID    uint64    `gorm:"not null;index"`
	AuthorID  uint64    `gorm:"not null;index"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"<-:create"`

	Author User `gorm:"foreignKey:AuthorID"`
}
