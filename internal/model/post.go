package model

import "time"

type Post struct {
	ID       uint64  `gorm:"primaryKey"`
	Text     string  `gorm:"type:text;not null"`
	AuthorID uint64  `gorm:"not null;index:idx_author_time,priority:1"`
	GroupID  *uint64 `gorm:"index"` // 可空；分组被删时置 NULL，帖子保留
	Image    string  `gorm:"size:255"`
	// 发布时间只在创建时写一次，更新帖子不允许改
	CreatedAt time.Time `gorm:"<-:create;index:idx_author_time,priority:2,sort:desc"`
	UpdatedAt time.Time

	Author User   `gorm:"foreignKey:AuthorID"`
	Group  *Group `gorm:"constraint:OnDelete:SET NULL"`
	Tags   []Tag  `gorm:"many2many:post_tags"`
}

// Tag 标签字典表，label 和 slug 都唯一
type Tag struct {
	ID    uint64 `gorm:"primaryKey"`
	Label string `gorm:"uniqueIndex;size:50;not null"`
	Slug  string `gorm:"uniqueIndex;size:50;not null"`
}
