package db_models

import "github.com/google/uuid"

type ContentKind string

const (
	KindAd    ContentKind = "ad"
	KindPost  ContentKind = "post"
	KindEmail ContentKind = "email"
)

// GeneratedArtifact is written once per successful generation and never updated.
type GeneratedArtifact struct {
	BaseModel
	AccountID   uuid.UUID   `gorm:"type:uuid;index"`
	ContentKind ContentKind `gorm:"size:16;index"`
	Prompt      string      `gorm:"type:text"`
	Result      string      `gorm:"type:text"`
}
