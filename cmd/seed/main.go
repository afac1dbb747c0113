// Command main runs the database seeder for Fritter.
package main

import (
	"flag"
	"log"

	"fritter/internal/config"
	"fritter/internal/database"
	"fritter/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numFreets := flag.Int("freets", 200, "Number of freets to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("fast", false, "Skip bcrypt hashing for faster seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d users, %d freets, clean=%v\n", *numUsers, *numFreets, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:   *numUsers,
		NumFreets:  *numFreets,
		SkipBcrypt: *skipBcrypt,
	}

	if *shouldClean {
		if err := seed.NewSeeder(db, opts).ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
