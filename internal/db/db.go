package db

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thatcatcamp/twtheme/internal/models"
	"github.com/thatcatcamp/twtheme/internal/themes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB(dbType, dbPath string) error {
	var err error
	var dialector gorm.Dialector

	switch dbType {
	case "sqlite":
		if dir := filepath.Dir(dbPath); dbPath != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dialector = sqlite.Open(dbPath)
	case "mysql", "mariadb":
		dialector = mysql.Open(dbPath) // dbPath is DSN for MySQL
	default:
		return fmt.Errorf("unsupported database type: %s", dbType)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all models
	if err := DB.AutoMigrate(&models.Build{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}

// GetDB returns the database connection
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database connection (used for testing)
func SetDB(database *gorm.DB) {
	DB = database
}

// NewBuild describes an emitted artifact before it is stored.
func NewBuild(kind, path, prefix string, colors themes.ColorMap, overrides themes.OverrideSet, css string) *models.Build {
	roles := make([]string, 0, len(colors))
	for _, r := range colors {
		roles = append(roles, r.Key+"="+r.Color)
	}
	sum := sha256.Sum256([]byte(css))

	return &models.Build{
		Kind:      kind,
		Path:      path,
		Prefix:    prefix,
		Roles:     strings.Join(roles, ","),
		Overrides: strings.Join(overrides.Names(), ","),
		Checksum:  hex.EncodeToString(sum[:]),
		Bytes:     len(css),
	}
}

// RecordBuild stores b in the ledger. It is a no-op when no database is open.
func RecordBuild(b *models.Build) error {
	if DB == nil {
		return nil
	}
	if err := DB.Create(b).Error; err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}
	return nil
}

// ListBuilds returns the most recent builds, newest first.
func ListBuilds(limit int) ([]models.Build, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var builds []models.Build
	q := DB.Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&builds).Error; err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	return builds, nil
}

// LatestBuild returns the newest build of the given kind.
func LatestBuild(kind string) (*models.Build, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	var b models.Build
	if err := DB.Where("kind = ?", kind).Order("created_at DESC").Order("id DESC").First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
