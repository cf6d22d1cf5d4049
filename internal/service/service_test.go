package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/internal/repository"
)

type fixture struct {
	db       *gorm.DB
	users    UserService
	profiles ProfileService
	posts    PostService
	tags     TagService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Profile{}, &model.Post{}, &model.Tag{}, &model.PostTag{},
	))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	tagRepo := repository.NewTagRepository(db)

	return &fixture{
		db:       db,
		users:    NewUserService(userRepo),
		profiles: NewProfileService(profileRepo, userRepo),
		posts:    NewPostService(postRepo, tagRepo),
		tags:     NewTagService(tagRepo),
	}
}
