package db

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedLocales = []struct {
	country   string
	city      string
	languages []string
}{
	{"Ukraine", "Kyiv", []string{"uk", "en"}},
	{"Brazil", "São Paulo", []string{"pt", "en"}},
	{"Japan", "Osaka", []string{"ja"}},
	{"Spain", "Valencia", []string{"es", "en"}},
	{"Kenya", "Nairobi", []string{"sw", "en"}},
	{"Poland", "Kraków", []string{"pl", "en"}},
	{"Vietnam", "Hanoi", []string{"vi"}},
	{"Colombia", "Medellín", []string{"es"}},
	{"Germany", "Hamburg", []string{"de", "en"}},
	{"India", "Pune", []string{"hi", "en"}},
}

// SeedTestData resets the database and populates it with demo profiles,
// likes, matches, and conversations.
//
// Behavior:
//  1. Clears all existing rows (children first, parents last).
//  2. Creates 20 profiles with hashed passwords and varied locales.
//  3. Generates likes with ~70% probability; every 3rd pair is forced
//     mutual and gets its match row, both match notifications, and a
//     short opening conversation.
//  4. Writes the landing-page site config plus one custom section.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Fresh start ---
	for _, table := range []string{"messages", "notifications", "matches", "likes", "custom_sections", "site_configs", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	if db.Dialector.Name() == "sqlite" {
		db.Exec("DELETE FROM sqlite_sequence WHERE name = 'messages'")
	}

	log.Println("Cleared existing data")

	// --- Seed Profiles (10 male, 10 female) ---
	for i := 1; i <= 20; i++ {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		locale := seedLocales[(i-1)%len(seedLocales)]
		gender := "male"
		if i > 10 {
			gender = "female"
		}

		profile := Profile{
			ID:                fmt.Sprintf("user%d", i),
			FirstName:         fmt.Sprintf("Demo%d", i),
			LastName:          "Seeded",
			Username:          fmt.Sprintf("user%d", i),
			PasswordHash:      string(hash),
			BirthDate:         fmt.Sprintf("199%d-0%d-15", i%10, i%9+1),
			Gender:            gender,
			Location:          locale.city,
			Country:           locale.country,
			Occupation:        "Engineer",
			EducationLevel:    "bachelors",
			Bio:               fmt.Sprintf("Hi, I'm Demo%d from %s.", i, locale.city),
			Languages:         locale.languages,
			Verified:          i%4 == 0,
			IsPremium:         i%5 == 0,
			ProfileCompletion: uint32(50 + r.Intn(51)),
			Active:            true,
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Println("Seeded 20 profiles.")

	// --- Seed Likes, Matches, Notifications, Messages ---
	counter := 0
	for actor := 1; actor <= 20; actor++ {
		for j := 0; j < 12; j++ { // each user likes ~12 others
			recipient := r.Intn(20) + 1
			if actor == recipient {
				continue
			}
			// gender-crossed demo data to mirror production traffic
			if (actor <= 10) == (recipient <= 10) {
				continue
			}

			actorID := fmt.Sprintf("user%d", actor)
			recipientID := fmt.Sprintf("user%d", recipient)

			// like probability 70%, unless we force a mutual pair below
			if r.Intn(100) >= 70 && counter%3 != 0 {
				counter++
				continue
			}

			kind := "like"
			if r.Intn(100) < 15 {
				kind = "super_like"
			}
			like := Like{FromUser: actorID, ToUser: recipientID, Kind: kind}
			if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error; err != nil {
				return fmt.Errorf("failed to seed like: %w", err)
			}

			// guarantee a mutual like (and therefore a match) every 3rd pair
			if counter%3 == 0 {
				recip := Like{FromUser: recipientID, ToUser: actorID, Kind: "like"}
				db.Clauses(clause.OnConflict{DoNothing: true}).Create(&recip)

				if err := seedMatch(db, actorID, recipientID); err != nil {
					return err
				}
			}

			counter++
		}
	}

	// --- Seed Site Config ---
	siteConfig := SiteConfig{
		ID:           1,
		HeroTitle:    "Beyond Borders, Beyond Expectations",
		HeroSubtitle: "Meet verified singles from around the world",
		HeroImage:    "https://cdn.example.com/hero.jpg",
		ShowAds:      true,
		AdContent:    "Go premium and see everyone who liked you.",
	}
	if err := db.Create(&siteConfig).Error; err != nil {
		return fmt.Errorf("failed to seed site config: %w", err)
	}
	section := CustomSection{
		ID:     uuid.NewString(),
		Page:   "landing",
		Title:  "Success Stories",
		Body:   "Couples who met here share how it happened.",
		Active: true,
	}
	if err := db.Create(&section).Error; err != nil {
		return fmt.Errorf("failed to seed custom section: %w", err)
	}

	return nil
}

// seedMatch writes the canonical match row, both notifications, and a short
// opening exchange. Pairs that already matched are silently skipped.
func seedMatch(db *gorm.DB, a, b string) error {
	userA, userB := a, b
	if userB < userA {
		userA, userB = userB, userA
	}

	match := Match{ID: uuid.NewString(), UserA: userA, UserB: userB}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&match)
	if res.Error != nil {
		return fmt.Errorf("failed to seed match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil
	}

	for _, userID := range []string{userA, userB} {
		matchID := match.ID
		note := Notification{
			ID:      uuid.NewString(),
			UserID:  userID,
			Type:    "new_match",
			Content: "You have a new match!",
			MatchID: &matchID,
		}
		db.Clauses(clause.OnConflict{DoNothing: true}).Create(&note)
	}

	opening := []Message{
		{ID: ulid.Make().String(), MatchID: match.ID, SenderID: userA, Kind: "text", Content: "Hey! We matched."},
		{ID: ulid.Make().String(), MatchID: match.ID, SenderID: userB, Kind: "text", Content: "We did! How's your day going?"},
	}
	for i := range opening {
		if err := db.Create(&opening[i]).Error; err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
	}

	return nil
}

// SeedMinimalTestData loads the small fixture used by service tests: three
// profiles, one mutual pair with its match row, and one unreciprocated like.
func SeedMinimalTestData(db *gorm.DB) error {
	for _, table := range []string{"messages", "notifications", "matches", "likes", "profiles"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}

	profiles := []Profile{
		{ID: "elena", Username: "elena", PasswordHash: "x", FirstName: "Elena", Gender: "female", Country: "Ukraine", Languages: []string{"uk", "en"}},
		{ID: "marcus", Username: "marcus", PasswordHash: "x", FirstName: "Marcus", Gender: "male", Country: "Germany", Languages: []string{"de", "en"}},
		{ID: "priya", Username: "priya", PasswordHash: "x", FirstName: "Priya", Gender: "female", Country: "India", Languages: []string{"hi", "en"}},
	}
	if err := db.Create(&profiles).Error; err != nil {
		return err
	}

	likes := []Like{
		{FromUser: "elena", ToUser: "marcus", Kind: "like"},       // elena → marcus
		{FromUser: "marcus", ToUser: "elena", Kind: "like"},       // marcus → elena, mutual
		{FromUser: "priya", ToUser: "marcus", Kind: "super_like"}, // priya → marcus, unreciprocated
	}
	if err := db.Create(&likes).Error; err != nil {
		return err
	}

	match := Match{ID: uuid.NewString(), UserA: "elena", UserB: "marcus"}
	if err := db.Create(&match).Error; err != nil {
		return err
	}

	return nil
}
