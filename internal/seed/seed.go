// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"fritter/internal/models"
	"fritter/internal/policy"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumFreets  int
	SkipBcrypt bool
	MaxDays    int
}

// Seeder populates the database with realistic test data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	r       *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Seeder{
		db:      db,
		factory: NewFactory(db, opts),
		r:       r,
	}
}

// ClearAll wipes every seeded table. Postgres only.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE verifications, reactions, follows, freets, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// SeedUsers creates the base accounts plus count generated ones. The base
// accounts keep stable usernames so manual testing has known logins.
func (s *Seeder) SeedUsers(count int) ([]models.User, error) {
	users := make([]models.User, 0, count)

	base := []struct {
		username string
		verified bool
		name     string
		age      string
	}{
		{"alice", true, "Alice", "30"},
		{"bob", true, "Bob", "16"},
		{"test", false, "", models.AgeUnknown},
	}
	for _, b := range base {
		user, err := s.factory.CreateUser(func(u *models.User) {
			u.Username = b.username
			u.Verified = b.verified
			u.Name = b.name
			if b.age != "" {
				u.Age = b.age
			}
		})
		if err != nil {
			log.Printf("Failed to create base user %s: %v", b.username, err)
			continue
		}
		users = append(users, *user)
	}

	for i := len(users); i < count; i++ {
		user, err := s.factory.CreateUser(func(u *models.User) {
			// rough uniqueness guard for large runs
			u.Username = fmt.Sprintf("%s%d", u.Username, i)
		})
		if err != nil {
			log.Printf("Failed to create user: %v", err)
			continue
		}
		users = append(users, *user)

		if i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	// mirror verified declarations into the audit table
	for i := range users {
		if !users[i].Verified {
			continue
		}
		record := models.Verification{
			UserID:   users[i].ID,
			Verified: true,
			Name:     users[i].Name,
			Age:      users[i].Age,
		}
		if err := s.db.Create(&record).Error; err != nil {
			log.Printf("Failed to record verification for %s: %v", users[i].Username, err)
		}
	}

	return users, nil
}

// SeedFreets creates count freets spread across the given users. A small
// share comes out age-restricted.
func (s *Seeder) SeedFreets(users []models.User, count int) ([]models.Freet, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to author freets")
	}

	freets := make([]*models.Freet, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.r.Intn(len(users))]
		freet := s.factory.BuildFreet(&author, func(f *models.Freet) {
			f.AgeRestrictedViewing = s.r.Float32() < 0.15
		})
		freets = append(freets, freet)
	}

	if err := s.factory.CreateFreetsBatch(freets); err != nil {
		return nil, err
	}

	out := make([]models.Freet, len(freets))
	for i := range freets {
		out[i] = *freets[i]
	}
	return out, nil
}

// SeedFollowGraph wires a sparse random follow graph over the users.
func (s *Seeder) SeedFollowGraph(users []models.User) (int, error) {
	edges := 0
	for i := range users {
		targets := s.r.Intn(6)
		for j := 0; j < targets; j++ {
			other := users[s.r.Intn(len(users))]
			if other.ID == users[i].ID {
				continue
			}
			follow := models.Follow{FollowerID: users[i].ID, FollowingID: other.ID}
			result := s.db.Where(&follow).FirstOrCreate(&follow)
			if result.Error != nil {
				continue
			}
			if result.RowsAffected > 0 {
				edges++
			}
		}
	}
	return edges, nil
}

// SeedReactions sprinkles likes and dislikes over the freets and settles the
// denormalized counters and the consensus verdict afterwards.
func (s *Seeder) SeedReactions(users []models.User, freets []models.Freet) (int, error) {
	total := 0
	for i := range freets {
		reactors := s.r.Intn(len(users) + 1)
		for j := 0; j < reactors && j < len(users); j++ {
			user := users[(i+j*7)%len(users)]
			reaction := models.Reaction{
				UserID:  user.ID,
				FreetID: freets[i].ID,
				Liked:   s.r.Float32() < 0.7,
			}
			result := s.db.Where(models.Reaction{UserID: user.ID, FreetID: freets[i].ID}).
				Attrs(reaction).FirstOrCreate(&reaction)
			if result.Error != nil || result.RowsAffected == 0 {
				continue
			}
			total++
		}
	}

	for i := range freets {
		if err := s.settleCounters(freets[i].ID); err != nil {
			return total, err
		}
	}
	return total, nil
}

// settleCounters recomputes likes, dislikes and the consensus flag for one
// freet from the reaction rows.
func (s *Seeder) settleCounters(freetID uint) error {
	var likes, dislikes int64
	if err := s.db.Model(&models.Reaction{}).
		Where("freet_id = ? AND liked = ?", freetID, true).Count(&likes).Error; err != nil {
		return err
	}
	if err := s.db.Model(&models.Reaction{}).
		Where("freet_id = ? AND liked = ?", freetID, false).Count(&dislikes).Error; err != nil {
		return err
	}

	return s.db.Model(&models.Freet{}).Where("id = ?", freetID).
		UpdateColumns(map[string]any{
			"likes":              likes,
			"dislikes":           dislikes,
			"consensus_filtered": policy.ConsensusFiltered(int(likes), int(dislikes)),
		}).Error
}

// Seed runs the full pipeline: users, freets, follow graph, reactions.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d freets...", opts.NumUsers, opts.NumFreets)
	s := NewSeeder(db, opts)

	users, err := s.SeedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d users created", len(users))

	freets, err := s.SeedFreets(users, opts.NumFreets)
	if err != nil {
		return fmt.Errorf("failed to create freets: %w", err)
	}
	log.Printf("%d freets created", len(freets))

	edges, err := s.SeedFollowGraph(users)
	if err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Printf("%d follow edges created", edges)

	reactions, err := s.SeedReactions(users, freets)
	if err != nil {
		return fmt.Errorf("failed to create reactions: %w", err)
	}
	log.Printf("%d reactions created", reactions)

	log.Println("Database seeding completed")
	return nil
}
