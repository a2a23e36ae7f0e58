package models

import (
	"time"

	"gorm.io/gorm"
)

// Artifact kinds recorded in the build ledger
const (
	KindTailwind     = "tailwind"
	KindPlain        = "plain"
	KindIntelliSense = "intellisense"
	KindTransform    = "transform"
)

// Build records one emitted theme artifact
type Build struct {
	ID        uint           `gorm:"primaryKey"`
	Kind      string         `gorm:"not null;index"` // "tailwind", "plain", "intellisense", "transform"
	Path      string         // Output file or transformed module id
	Prefix    string         `gorm:"not null;default:ui"`
	Roles     string         // Comma-separated role=color pairs in config order
	Overrides string         // Comma-separated overridden palette colors
	Checksum  string         `gorm:"size:64;index"` // sha256 of the CSS, hex
	Bytes     int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
