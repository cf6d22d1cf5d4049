package database

import (
	"gorm.io/gorm"

	"github.com/Anmol-Srv/blog-api/internal/model"
	"github.com/Anmol-Srv/blog-api/pkg/logger"
)

// Seed loads the sample dataset: five users with profiles, eight posts in
// mixed statuses, seven tags and their associations. Skipped when users
// already exist, so it is safe to run on every start.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("seed: users already present, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []model.User{
			{FirstName: "Alice", LastName: "Johnson", Email: "alice@example.com"},
			{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"},
			{FirstName: "Charlie", LastName: "Brown", Email: "charlie@example.com"},
			{FirstName: "Diana", LastName: "Doe", Email: "diana@example.com"},
			{FirstName: "Eve", LastName: "Adams", Email: "eve@example.com"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		bios := []string{
			"Alice is a web developer",
			"Bob is a software engineer",
			"Charlie is a data scientist",
			"Diana is a project manager",
			"Eve is a UI/UX designer",
		}
		for i := range users {
			if err := tx.Create(&model.Profile{Bio: bios[i], UserID: users[i].ID}).Error; err != nil {
				return err
			}
		}

		type seedPost struct {
			title, content, status string
			author                 int // index into users
			tags                   []int
		}
		tags := []model.Tag{
			{Name: "Technology"}, {Name: "Programming"}, {Name: "Lifestyle"},
			{Name: "Management"}, {Name: "Data Science"}, {Name: "Design"},
			{Name: "Web Development"},
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}

		posts := []seedPost{
			{"Alice's first post", "Alice discusses web development tips.", model.PostStatusActive, 0, []int{0, 1, 6}},
			{"Alice's second post", "Exploring JavaScript frameworks.", model.PostStatusDraft, 0, []int{1, 6}},
			{"Bob's first post", "Understanding the software development life cycle.", model.PostStatusArchived, 1, []int{0, 3}},
			{"Charlie's first post", "An introduction to data science.", model.PostStatusActive, 2, []int{0, 4}},
			{"Diana's first post", "Managing software projects effectively.", model.PostStatusDraft, 3, []int{0, 3}},
			{"Eve's first post", "Designing for mobile applications.", model.PostStatusArchived, 4, []int{5, 2}},
			{"Bob's second post", "Version control with Git.", model.PostStatusActive, 1, []int{1}},
			{"Alice's third post", "Introduction to CSS Grid.", model.PostStatusActive, 0, []int{6}},
		}
		for _, sp := range posts {
			p := model.Post{
				Title:   sp.title,
				Content: sp.content,
				Status:  sp.status,
				UserID:  users[sp.author].ID,
				Slug:    model.NewSlug(sp.title),
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			for _, ti := range sp.tags {
				if err := tx.Create(&model.PostTag{PostID: p.ID, TagID: tags[ti].ID}).Error; err != nil {
					return err
				}
			}
		}

		logger.Info("seed: sample data loaded")
		return nil
	})
}
