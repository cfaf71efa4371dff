package db_models

import "github.com/google/uuid"

type LengthPreference string

const (
	LengthShort  LengthPreference = "short"
	LengthMedium LengthPreference = "medium"
	LengthLong   LengthPreference = "long"
)

type CTAStyle string

const (
	CTASoft       CTAStyle = "soft"
	CTABalanced   CTAStyle = "balanced"
	CTAAggressive CTAStyle = "aggressive"
)

const (
	MinCreativity     = 1
	MaxCreativity     = 10
	DefaultCreativity = 5
)

// PreferenceProfile holds the per-account personalization settings.
type PreferenceProfile struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	UseEmojis        bool
	UseHashtags      bool
	LengthPreference LengthPreference `gorm:"size:16"`
	CTAStyle         CTAStyle         `gorm:"size:16"`
	CreativityLevel  int

	BrandTone    string
	WritingStyle string
	Signature    string `gorm:"type:text"`

	// brand context
	FullName         string
	Title            string
	CompanyName      string
	CompanyWebsite   string
	Industry         string
	BrandDescription string `gorm:"type:text"`
	TargetAudience   string
}

// DefaultPreferenceProfile is what every consumer falls back to when an account has no profile.
func DefaultPreferenceProfile() PreferenceProfile {
	return PreferenceProfile{
		UseEmojis:        true,
		UseHashtags:      true,
		LengthPreference: LengthMedium,
		CTAStyle:         CTABalanced,
		CreativityLevel:  DefaultCreativity,
	}
}
