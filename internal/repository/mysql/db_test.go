package mysql

import (
	"testing"

	"Vega_Blog/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB 每个用例独立的内存库，建全套表
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Group{},
		&model.Tag{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
		&model.Like{},
		&model.SocialOutbox{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, Password: "x", Email: username + "@example.com"}
	require.NoError(t, db.Create(user).Error)
	return user
}
