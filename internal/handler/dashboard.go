package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mlachapelle/creatorlens/internal/analytics"
	"github.com/mlachapelle/creatorlens/internal/middleware"
	"github.com/mlachapelle/creatorlens/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetCreators handles GET /api/creators
func (h *DashboardHandler) GetCreators(c fiber.Ctx) error {
	return h.section(c, service.SectionCreators)
}

// GetScores handles GET /api/scores
func (h *DashboardHandler) GetScores(c fiber.Ctx) error {
	return h.section(c, service.SectionScores)
}

// GetRegression handles GET /api/regression/views-subscribers
func (h *DashboardHandler) GetRegression(c fiber.Ctx) error {
	return h.section(c, service.SectionRegression)
}

// GetDurationHistogram handles GET /api/histograms/duration
func (h *DashboardHandler) GetDurationHistogram(c fiber.Ctx) error {
	return h.section(c, service.SectionHistogram)
}

// GetGroups handles GET /api/groups/:dimension
func (h *DashboardHandler) GetGroups(c fiber.Ctx) error {
	dim, errMsg := middleware.ValidateGroupDimension(c.Params("dimension"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_DIMENSION", errMsg)
	}

	payload, err := h.svc.GroupJSON(c.Context(), analytics.GroupDimension(dim))
	if err != nil {
		return h.sectionError(c, err)
	}
	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

// GetChannelStats handles GET /api/creators/:channelId/stats
func (h *DashboardHandler) GetChannelStats(c fiber.Ctx) error {
	channelID, errMsg := middleware.ValidateChannelID(c.Params("channelId"))
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_ID", errMsg)
	}

	stats, ok, err := h.svc.ChannelStats(channelID)
	if err != nil {
		return h.sectionError(c, err)
	}
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No videos for this channel in the current snapshot")
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) section(c fiber.Ctx, name string) error {
	payload, err := h.svc.SectionJSON(c.Context(), name)
	if err != nil {
		return h.sectionError(c, err)
	}
	c.Set("Content-Type", "application/json")
	return c.Send(payload)
}

func (h *DashboardHandler) sectionError(c fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNoSnapshot) {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SNAPSHOT_PENDING", "First snapshot not loaded yet")
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render dashboard section")
}
