package seed

import (
	"fmt"
	"math/rand"
	"time"

	"fritter/internal/models"
	"fritter/internal/validation"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

// BuildUser constructs a sample user without persisting it. Roughly a third
// of generated users come out verified with a declared name and age.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	user := &models.User{
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Age:      models.AgeUnknown,
	}

	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	if gofakeit.Number(0, 2) == 0 {
		user.Verified = true
		user.Name = gofakeit.FirstName()
		user.Age = fmt.Sprintf("%d", gofakeit.Number(13, 80))
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildFreet constructs a sample freet for the given author without
// persisting it. Content always fits the 140 character limit.
func (f *Factory) BuildFreet(author *models.User, overrides ...func(*models.Freet)) *models.Freet {
	freet := &models.Freet{
		AuthorID: author.ID,
		Content:  freetContent(),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	back := time.Duration(r.Intn(maxDays))*24*time.Hour +
		time.Duration(r.Intn(24))*time.Hour +
		time.Duration(r.Intn(60))*time.Minute
	freet.CreatedAt = time.Now().Add(-back)
	freet.UpdatedAt = freet.CreatedAt

	for _, override := range overrides {
		override(freet)
	}
	return freet
}

// CreateFreet constructs and persists a sample `models.Freet`.
func (f *Factory) CreateFreet(author *models.User, overrides ...func(*models.Freet)) (*models.Freet, error) {
	freet := f.BuildFreet(author, overrides...)
	if err := f.db.Create(freet).Error; err != nil {
		return nil, err
	}
	return freet, nil
}

// CreateFreetsBatch persists multiple freets in a single DB call.
func (f *Factory) CreateFreetsBatch(freets []*models.Freet) error {
	if len(freets) == 0 {
		return nil
	}
	return f.db.Create(&freets).Error
}

// freetContent generates a short post that respects the length limit.
func freetContent() string {
	content := gofakeit.Sentence(gofakeit.Number(3, 12))
	runes := []rune(content)
	if len(runes) > validation.MaxFreetLength {
		runes = runes[:validation.MaxFreetLength]
	}
	return string(runes)
}
