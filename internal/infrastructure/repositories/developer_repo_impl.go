package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"matrix-talent.backend/internal/domain/entities"
	domainerrors "matrix-talent.backend/internal/domain/errors"
	"matrix-talent.backend/internal/domain/repositories"
	"matrix-talent.backend/internal/infrastructure/models"
)

// DeveloperRepository implements developer profile data operations on GORM.
// Store-specific errors are translated into domain errors here so callers
// never see driver error codes.
type DeveloperRepository struct {
	db *gorm.DB
}

// NewDeveloperRepository creates a new developer repository
func NewDeveloperRepository(db *gorm.DB) *DeveloperRepository {
	return &DeveloperRepository{db: db}
}

// Create persists a new developer profile
func (r *DeveloperRepository) Create(ctx context.Context, dev *entities.Developer) error {
	m, err := toModel(dev)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// Requires gorm error translation on the open connection, which maps
		// unique-index violations from both postgres and sqlite drivers.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// GetByID gets a developer profile by ID
func (r *DeveloperRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Developer, error) {
	var m models.Developer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m)
}

// List lists developer profiles, newest first, with optional search and role
// filters. Search is a case-insensitive substring match across name, email
// and bio; LOWER/LIKE keeps the behavior identical on postgres and sqlite.
func (r *DeveloperRepository) List(ctx context.Context, filter repositories.DeveloperFilter) ([]*entities.Developer, error) {
	var devModels []models.Developer
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(bio) LIKE ?", term, term, term)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	if err := query.Find(&devModels).Error; err != nil {
		return nil, err
	}

	devs := make([]*entities.Developer, 0, len(devModels))
	for i := range devModels {
		dev, err := toEntity(&devModels[i])
		if err != nil {
			return nil, err
		}
		devs = append(devs, dev)
	}
	return devs, nil
}

// Delete removes a developer profile. Deleting an id that does not exist
// reports ErrNotFound rather than silent success.
func (r *DeveloperRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Developer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of developer profiles
func (r *DeveloperRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Developer{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCreatedSince counts profiles created at or after the given time
func (r *DeveloperRepository) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Developer{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TopRole returns the most common role, or "" when the table is empty
func (r *DeveloperRepository) TopRole(ctx context.Context) (string, error) {
	var role string
	err := r.db.WithContext(ctx).Model(&models.Developer{}).
		Select("role").
		Group("role").
		Order("COUNT(id) DESC").
		Limit(1).
		Scan(&role).Error
	if err != nil {
		return "", err
	}
	return role, nil
}

func toModel(dev *entities.Developer) (*models.Developer, error) {
	skills := dev.Skills
	if skills == nil {
		skills = []string{}
	}
	raw, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}

	return &models.Developer{
		ID:           dev.ID,
		Name:         dev.Name,
		Email:        dev.Email,
		Role:         dev.Role,
		Bio:          dev.Bio,
		Skills:       datatypes.JSON(raw),
		PortfolioURL: dev.PortfolioURL.Ptr(),
		GithubURL:    dev.GithubURL.Ptr(),
		LinkedinURL:  dev.LinkedinURL.Ptr(),
		Experience:   dev.Experience,
		Location:     dev.Location.Ptr(),
		CreatedAt:    dev.CreatedAt,
	}, nil
}

func toEntity(m *models.Developer) (*entities.Developer, error) {
	skills := []string{}
	if len(m.Skills) > 0 {
		if err := json.Unmarshal(m.Skills, &skills); err != nil {
			return nil, err
		}
	}

	return &entities.Developer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         m.Role,
		Bio:          m.Bio,
		Skills:       skills,
		PortfolioURL: null.StringFromPtr(m.PortfolioURL),
		GithubURL:    null.StringFromPtr(m.GithubURL),
		LinkedinURL:  null.StringFromPtr(m.LinkedinURL),
		Experience:   m.Experience,
		Location:     null.StringFromPtr(m.Location),
		CreatedAt:    m.CreatedAt,
	}, nil
}
