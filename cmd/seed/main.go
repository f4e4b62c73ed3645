// Command seed populates the database with demo forum data.
package main

import (
	"flag"
	"log"
	"time"

	"gamerforum/internal/config"
	"gamerforum/internal/database"
	"gamerforum/internal/seed"
)

func main() {
	var (
		numUsers = flag.Int("users", 10, "number of member accounts to create")
		numGames = flag.Int("games", 20, "number of games to create")
		numPosts = flag.Int("posts", 40, "number of discussion threads to create")
		clean    = flag.Bool("clean", false, "wipe existing data before seeding")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := seed.NewSeeder(db, time.Now().UnixNano())

	if *clean {
		if err := seeder.ClearAll(); err != nil {
			log.Fatalf("Failed to clear existing data: %v", err)
		}
		log.Println("Cleared existing data")
	}

	users, err := seeder.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	games, err := seeder.SeedCatalog(*numGames)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	if err := seeder.SeedDiscussions(users, games, *numPosts); err != nil {
		log.Fatalf("Failed to seed discussions: %v", err)
	}

	log.Printf("Seeded %d users, %d games, %d posts (password for all accounts: %s)",
		len(users), len(games), *numPosts, seed.DefaultPassword)
}
