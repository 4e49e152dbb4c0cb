package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Developer struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role         string         `gorm:"type:varchar(100);not null"`
	Bio          string         `gorm:"type:text;not null"`
	Skills       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	PortfolioURL *string        `gorm:"type:varchar(500)"`
	GithubURL    *string        `gorm:"type:varchar(500)"`
	LinkedinURL  *string        `gorm:"type:varchar(500)"`
	Experience   string         `gorm:"type:varchar(50);not null"`
	Location     *string        `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
}
