package model

import "time"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:32;not null"`
	Password  string `gorm:"size:255;not null" json:"-"`
	Email     string `gorm:"uniqueIndex;size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Profile 用户资料，和 User 一对一。
// 建用户时在同一个事务里创建，保证每个用户恰好一条资料。
type Profile struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"uniqueIndex;not null"`
	Bio       string `gorm:"size:500"`
	Location  string `gorm:"size:30"`
	BirthDate *time.Time
	Photo     string `gorm:"size:255"` // 上传后的图片URL
	CreatedAt time.Time
	UpdatedAt time.Time
}
