// Package seed provides helpers to create demo data for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"gamerforum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password assigned to every seeded user.
const DefaultPassword = "password123"

var categoryNames = []string{
	"RPG", "Action", "Strategy", "Puzzle", "Simulation",
	"Sports", "Platformer", "Roguelike", "Horror", "Racing",
}

// Seeder populates the forum with generated members, games, threads,
// comments, and votes.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB, seedValue int64) *Seeder {
	gofakeit.Seed(seedValue)
	return &Seeder{db: db, rand: rand.New(rand.NewSource(seedValue))}
}

// ClearAll removes all forum data, children first so no foreign key is
// ever left dangling mid-wipe.
func (s *Seeder) ClearAll() error {
	for _, m := range []any{
		&models.Vote{}, &models.Comment{}, &models.Post{},
		&models.Game{}, &models.Category{}, &models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
			return fmt.Errorf("clear %T: %w", m, err)
		}
	}
	return nil
}

// SeedUsers creates n members plus one admin account.
func (s *Seeder) SeedUsers(n int) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n+1)
	users = append(users, models.User{
		Username:     "admin",
		Email:        "admin@gamerforum.example",
		PasswordHash: string(hash),
		IsAdmin:      true,
	})
	for i := 0; i < n; i++ {
		users = append(users, models.User{
			Username:     fmt.Sprintf("%s%d", gofakeit.Gamertag(), i),
			Email:        fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			PasswordHash: string(hash),
		})
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return users, nil
}

// SeedCatalog creates the categories and n games spread across them.
func (s *Seeder) SeedCatalog(n int) ([]models.Game, error) {
	categories := make([]models.Category, 0, len(categoryNames))
	for _, name := range categoryNames {
		categories = append(categories, models.Category{Name: name})
	}
	if err := s.db.Create(&categories).Error; err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	games := make([]models.Game, 0, n)
	for i := 0; i < n; i++ {
		games = append(games, models.Game{
			Title:       fmt.Sprintf("%s %d", gofakeit.ProductName(), i),
			Studio:      gofakeit.Company(),
			Description: gofakeit.Paragraph(1, 3, 8, " "),
			Rating:      float64(s.rand.Intn(101)) / 10,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/600/400", gofakeit.UUID()),
			CategoryID:  categories[s.rand.Intn(len(categories))].ID,
		})
	}
	if err := s.db.Create(&games).Error; err != nil {
		return nil, fmt.Errorf("seed games: %w", err)
	}
	return games, nil
}

// SeedDiscussions creates threads under the games, with comments and
// votes from random members.
func (s *Seeder) SeedDiscussions(users []models.User, games []models.Game, numPosts int) error {
	if len(users) == 0 || len(games) == 0 {
		return fmt.Errorf("seed discussions: users and games required")
	}

	for i := 0; i < numPosts; i++ {
		post := models.Post{
			Title:   gofakeit.Question(),
			Content: gofakeit.Paragraph(1, 4, 10, "\n"),
			GameID:  games[s.rand.Intn(len(games))].ID,
			UserID:  users[s.rand.Intn(len(users))].ID,
		}
		if err := s.db.Create(&post).Error; err != nil {
			return fmt.Errorf("seed post: %w", err)
		}

		numComments := s.rand.Intn(6)
		for j := 0; j < numComments; j++ {
			comment := models.Comment{
				Content: gofakeit.Sentence(12),
				PostID:  post.ID,
				UserID:  users[s.rand.Intn(len(users))].ID,
			}
			if err := s.db.Create(&comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}

			// Distinct voters only; the (user, comment) pair is unique.
			for _, voter := range s.pickUsers(users, s.rand.Intn(4)) {
				voteType := models.VoteUp
				if s.rand.Intn(3) == 0 {
					voteType = models.VoteDown
				}
				vote := models.Vote{Type: voteType, UserID: voter.ID, CommentID: comment.ID}
				if err := s.db.Create(&vote).Error; err != nil {
					return fmt.Errorf("seed vote: %w", err)
				}
			}
		}
	}

	log.Printf("seeded %d posts across %d games", numPosts, len(games))
	return nil
}

func (s *Seeder) pickUsers(users []models.User, n int) []models.User {
	if n > len(users) {
		n = len(users)
	}
	picked := make([]models.User, len(users))
	copy(picked, users)
	s.rand.Shuffle(len(picked), func(i, j int) { picked[i], picked[j] = picked[j], picked[i] })
	return picked[:n]
}
