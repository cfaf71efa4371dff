package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name             string
	Email            string `gorm:"uniqueIndex"`
	PasswordHash     string
	Role             string           `gorm:"size:16"`
	SubscriptionTier SubscriptionTier `gorm:"size:32;index"`
	GenerationCount  int              `gorm:"not null"`
	LastResetAt      *int64           // unix seconds, nil until the first generation

	Profile   *PreferenceProfile  `gorm:"foreignKey:AccountID"`
	Artifacts []GeneratedArtifact `gorm:"foreignKey:AccountID"`
}
