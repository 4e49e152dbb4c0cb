package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Developer represents a submitted developer profile
type Developer struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Role         string      `json:"role"`
	Bio          string      `json:"bio"`
	Skills       []string    `json:"skills"`
	PortfolioURL null.String `json:"portfolioUrl"`
	GithubURL    null.String `json:"githubUrl"`
	LinkedinURL  null.String `json:"linkedinUrl"`
	Experience   string      `json:"experience"`
	Location     null.String `json:"location"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// CreateDeveloperInput represents input for submitting a developer profile.
// Required-field and email-shape validation happens in the usecase so the
// API can report which fields are missing.
type CreateDeveloperInput struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Bio          string   `json:"bio"`
	Skills       []string `json:"skills"`
	PortfolioURL string   `json:"portfolioUrl"`
	GithubURL    string   `json:"githubUrl"`
	LinkedinURL  string   `json:"linkedinUrl"`
	Experience   string   `json:"experience"`
	Location     string   `json:"location"`
}

// DeveloperStats summarizes the registry for the admin dashboard
type DeveloperStats struct {
	Total    int64  `json:"total"`
	ThisWeek int64  `json:"thisWeek"`
	TopRole  string `json:"topRole"`
}
