package model

import "time"

// Group 帖子分组，slug 全局唯一
type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Slug        string `gorm:"uniqueIndex;size:20;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
