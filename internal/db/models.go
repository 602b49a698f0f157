package db

import (
	"time"
)

// Profile holds the user-facing identity and onboarding state. The row id is
// the subject identifier issued by the external identity provider.
//
// Profiles are never hard-deleted; deactivation is a soft state on the row.
type Profile struct {
	ID                string    `gorm:"primaryKey;size:64"`
	FirstName         string    `gorm:"size:64"`
	LastName          string    `gorm:"size:64"`
	Username          string    `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash      string    `gorm:"size:255"` // dev/seed only; production auth lives in the identity provider
	BirthDate         string    `gorm:"size:10"`
	Gender            string    `gorm:"size:16"`
	Location          string    `gorm:"size:128"`
	Country           string    `gorm:"size:64"`
	Occupation        string    `gorm:"size:128"`
	EducationLevel    string    `gorm:"size:64"`
	Bio               string    `gorm:"type:text"`
	Languages         []string  `gorm:"serializer:json"`
	Verified          bool      `gorm:"default:false"`
	IsPremium         bool      `gorm:"default:false"`
	ProfileCompletion uint32    `gorm:"default:0"` // 0-100, only ever raised
	Active            bool      `gorm:"default:true"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

// Like is a one-directional expression of interest.
//
// Composite PK: (FromUser, ToUser)
//   - At most one row per ordered pair. A second like for the same pair is a
//     conflict, surfaced to the caller as a duplicate-interest error; likes
//     are never overwritten or deleted.
//
// Index:
//   - idx_to_user_created(to_user, created_at DESC, from_user)
//     Serves "who liked me" listings with cursor pagination.
type Like struct {
	FromUser  string    `gorm:"primaryKey;size:64"`
	ToUser    string    `gorm:"primaryKey;size:64;index:idx_to_user_created,priority:1"`
	Kind      string    `gorm:"size:16;not null"` // like | super_like
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_to_user_created,priority:2,sort:desc"`
}

// Match is the confirmed bidirectional edge for an unordered user pair.
//
// UserA/UserB are stored canonically (UserA < UserB) and carry a composite
// unique index, so concurrent reciprocal likes can never materialize two
// rows for the same pair. Rows are immutable once created and gate access
// to the pair's conversation.
type Match struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserA     string    `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:1"`
	UserB     string    `gorm:"size:64;not null;uniqueIndex:idx_match_pair,priority:2;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Message is one entry in a match's append-only conversation log.
//
// Seq is the server-assigned total order within (and across) matches; the
// public ID is a ULID so clients can de-duplicate a message seen via both
// ListMessages and a live subscription. Rows are immutable; translations
// are a view-layer concern and never stored.
type Message struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"uniqueIndex;size:26;not null"`
	MatchID   string    `gorm:"size:36;not null;index"`
	SenderID  string    `gorm:"size:64;not null"`
	Kind      string    `gorm:"size:16;not null"` // text | voice | image
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Notification is a per-user alert row. Match alerts carry the match id and
// are deduplicated by idx_user_match_note so a "new match" is never shown
// twice, even when the creating event is delivered more than once.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:64;not null;index;uniqueIndex:idx_user_match_note,priority:1"`
	Type      string    `gorm:"size:32;not null"`
	Content   string    `gorm:"type:text"`
	MatchID   *string   `gorm:"size:36;uniqueIndex:idx_user_match_note,priority:2"`
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// SiteConfig is the single CMS-managed configuration row (id 1), read-only
// to this service.
type SiteConfig struct {
	ID           uint32    `gorm:"primaryKey"`
	HeroTitle    string    `gorm:"size:255"`
	HeroSubtitle string    `gorm:"size:255"`
	HeroImage    string    `gorm:"size:512"`
	ShowAds      bool      `gorm:"default:false"`
	AdContent    string    `gorm:"type:text"`
	AdImage      string    `gorm:"size:512"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// CustomSection is an admin-authored content block attached to a page.
type CustomSection struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Page      string    `gorm:"size:64;index"`
	Title     string    `gorm:"size:255"`
	Body      string    `gorm:"type:text"`
	Image     string    `gorm:"size:512"`
	Active    bool      `gorm:"default:true"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
