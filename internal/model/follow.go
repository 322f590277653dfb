package model

import "time"

// Follow 关注关系，(user_id, author_id) 唯一。
// 去重靠唯一索引兜底，不依赖先查后插。
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null;index;uniqueIndex:uk_user_author"`
	AuthorID  uint64 `gorm:"not null;index;uniqueIndex:uk_user_author"`
	CreatedAt time.Time
}

func (Follow) TableName() string {
	return "follow"
}

// SocialOutbox 社交事件监控表
type SocialOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:16;not null"` // follow / unfollow / like / unlike
	ActorID   uint64 `gorm:"not null"`
	TargetID  uint64 `gorm:"not null"` // 关注事件为作者ID，点赞事件为帖子ID
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SocialOutbox) TableName() string { return "social_outbox" }
