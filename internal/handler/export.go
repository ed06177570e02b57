package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/mlachapelle/creatorlens/internal/middleware"
	"github.com/mlachapelle/creatorlens/internal/service"
)

type ExportHandler struct {
	svc *service.DashboardService
}

func NewExportHandler(svc *service.DashboardService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportScores handles GET /api/export/scores.csv
// Streams the current ranked score table as CSV, one row per creator.
func (h *ExportHandler) ExportScores(c fiber.Ctx) error {
	d, err := h.svc.Current()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "SNAPSHOT_PENDING", "First snapshot not loaded yet")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"rank", "channel_id", "name", "subscriber_score", "engagement_score", "ratio_score", "volume_score", "total"}
	if err := w.Write(header); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	for i, row := range d.Scores {
		record := []string{
			strconv.Itoa(i + 1),
			row.ChannelID,
			row.Name,
			formatScore(row.SubscriberScore),
			formatScore(row.EngagementScore),
			formatScore(row.RatioScore),
			formatScore(row.VolumeScore),
			formatScore(row.Total),
		}
		if err := w.Write(record); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build export")
	}

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename=scores-"+d.Version+".csv")
	return c.Send(buf.Bytes())
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}
