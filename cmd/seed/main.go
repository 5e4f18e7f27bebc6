// Command seed populates the database with demo users, posts and tags.
package main

import (
	"flag"
	"log"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/seed"
)

func main() {
	users := flag.Int("users", seed.DefaultOptions.Users, "number of users to create")
	postsPerUser := flag.Int("posts", seed.DefaultOptions.PostsPerUser, "posts per user")
	tags := flag.Int("tags", seed.DefaultOptions.Tags, "number of tags to create")
	maxDays := flag.Int("max-days", seed.DefaultOptions.MaxDays, "spread post dates over this many days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		Users:        *users,
		PostsPerUser: *postsPerUser,
		Tags:         *tags,
		MaxDays:      *maxDays,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d posts, %d tags", opts.Users, opts.Users*opts.PostsPerUser, opts.Tags)
}
