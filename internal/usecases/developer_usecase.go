package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"matrix-talent.backend/internal/domain/entities"
	domainerrors "matrix-talent.backend/internal/domain/errors"
	"matrix-talent.backend/internal/domain/repositories"
	"matrix-talent.backend/pkg/utils"
)

// DeveloperUsecase handles developer profile business logic
type DeveloperUsecase struct {
	developerRepo repositories.DeveloperRepository
}

// NewDeveloperUsecase creates a new developer usecase
func NewDeveloperUsecase(developerRepo repositories.DeveloperRepository) *DeveloperUsecase {
	return &DeveloperUsecase{developerRepo: developerRepo}
}

// Create validates and persists a new developer profile. Presence is checked
// before the email shape, so a request missing the email reports the missing
// field rather than a format error.
func (u *DeveloperUsecase) Create(ctx context.Context, input *entities.CreateDeveloperInput) (*entities.Developer, error) {
	required := []struct {
		field string
		value string
	}{
		{"name", input.Name},
		{"email", input.Email},
		{"role", input.Role},
		{"bio", input.Bio},
		{"experience", input.Experience},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.field)
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.BadRequest("missing required fields: " + strings.Join(missing, ", "))
	}

	if !emailPattern.MatchString(input.Email) {
		return nil, domainerrors.BadRequest("invalid email format")
	}

	skills := input.Skills
	if skills == nil {
		skills = []string{}
	}

	dev := &entities.Developer{
		ID:           utils.GenerateUUIDv7(),
		Name:         input.Name,
		Email:        input.Email,
		Role:         input.Role,
		Bio:          input.Bio,
		Skills:       skills,
		PortfolioURL: optionalString(input.PortfolioURL),
		GithubURL:    optionalString(input.GithubURL),
		LinkedinURL:  optionalString(input.LinkedinURL),
		Experience:   input.Experience,
		Location:     optionalString(input.Location),
		CreatedAt:    time.Now().UTC(),
	}

	if err := u.developerRepo.Create(ctx, dev); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("a developer with this email already exists")
		}
		return nil, err
	}

	return dev, nil
}

// List returns developer profiles newest first, filtered by an optional
// case-insensitive search term (name, email or bio) and an optional exact
// role. An empty result is a valid success.
func (u *DeveloperUsecase) List(ctx context.Context, search, role string) ([]*entities.Developer, error) {
	return u.developerRepo.List(ctx, repositories.DeveloperFilter{
		Search: search,
		Role:   role,
	})
}

// GetByID returns a single developer profile
func (u *DeveloperUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Developer, error) {
	return u.developerRepo.GetByID(ctx, id)
}

// DeleteByID removes a developer profile unconditionally
func (u *DeveloperUsecase) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return u.developerRepo.Delete(ctx, id)
}

// Stats aggregates registry counters for the admin dashboard
func (u *DeveloperUsecase) Stats(ctx context.Context) (*entities.DeveloperStats, error) {
	total, err := u.developerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	thisWeek, err := u.developerRepo.CountCreatedSince(ctx, time.Now().UTC().Add(-RecentWindow))
	if err != nil {
		return nil, err
	}

	topRole, err := u.developerRepo.TopRole(ctx)
	if err != nil {
		return nil, err
	}

	return &entities.DeveloperStats{
		Total:    total,
		ThisWeek: thisWeek,
		TopRole:  topRole,
	}, nil
}

func optionalString(s string) null.String {
	if strings.TrimSpace(s) == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
