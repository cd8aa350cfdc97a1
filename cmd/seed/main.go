// Command seed fills the development database with generated news, team members
// and an about page.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gradsite/modteam/internal/pkg/database"
	"github.com/gradsite/modteam/internal/pkg/env"
	"github.com/gradsite/modteam/internal/pkg/seed"
)

func main() {
	posts := flag.Int("posts", 30, "Number of news posts to create")
	members := flag.Int("members", 8, "Number of team members to create")
	days := flag.Int("days", 90, "Spread post dates over this many days")
	clean := flag.Bool("clean", false, "Delete all content before seeding")
	seedValue := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.Parse()

	env.SetupEnvFile()
	if !env.IsDev() {
		log.Fatal("Refusing to seed outside of APP_ENV=dev")
	}

	database.SetupDatabase()

	s := seed.NewSeeder(database.GetDB(), *seedValue)
	if err := s.Run(seed.Options{
		Posts:   *posts,
		Members: *members,
		MaxDays: *days,
		Clean:   *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Seeding done (seed %d)", *seedValue)
}
