package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"matrix-talent.backend/internal/domain/entities"
	domainerrors "matrix-talent.backend/internal/domain/errors"
	"matrix-talent.backend/internal/interfaces/http/response"
	"matrix-talent.backend/internal/usecases"
	"matrix-talent.backend/pkg/logger"
)

// DeveloperHandler handles developer profile endpoints
type DeveloperHandler struct {
	developerUsecase *usecases.DeveloperUsecase
}

// NewDeveloperHandler creates a new developer handler
func NewDeveloperHandler(developerUsecase *usecases.DeveloperUsecase) *DeveloperHandler {
	return &DeveloperHandler{developerUsecase: developerUsecase}
}

// ListProfiles lists developer profiles, optionally filtered
// GET /api/v1/profiles?search=&role=
func (h *DeveloperHandler) ListProfiles(c *gin.Context) {
	devs, err := h.developerUsecase.List(c.Request.Context(), c.Query("search"), c.Query("role"))
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to list profiles", zap.Error(err))
		response.ErrorWithError(c, http.StatusInternalServerError, domainerrors.CodeInternalError, "failed to fetch profiles")
		return
	}

	response.Success(c, http.StatusOK, devs)
}

// CreateProfile submits a new developer profile
// POST /api/v1/profiles
func (h *DeveloperHandler) CreateProfile(c *gin.Context) {
	var input entities.CreateDeveloperInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return
	}

	dev, err := h.developerUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dev)
}

// GetProfile gets a single developer profile
// GET /api/v1/profiles/:id
func (h *DeveloperHandler) GetProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid profile id"))
		return
	}

	dev, err := h.developerUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, dev)
}

// DeleteProfile removes a developer profile
// DELETE /api/v1/profiles/:id
func (h *DeveloperHandler) DeleteProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid profile id"))
		return
	}

	if err := h.developerUsecase.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "profile deleted successfully"})
}

// GetStats returns aggregate registry counters for the admin dashboard
// GET /api/v1/profiles/stats
func (h *DeveloperHandler) GetStats(c *gin.Context) {
	stats, err := h.developerUsecase.Stats(c.Request.Context())
	if err != nil {
		logger.Error(c.Request.Context(), "Failed to compute stats", zap.Error(err))
		response.ErrorWithError(c, http.StatusInternalServerError, domainerrors.CodeInternalError, "failed to compute stats")
		return
	}

	response.Success(c, http.StatusOK, stats)
}
