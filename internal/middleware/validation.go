package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MaxChannelIDLen = 32 // creators.channel_id VARCHAR(32)
)

// channelIDRe matches YouTube-style channel ids: alphanumeric, dash,
// underscore.
var channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// groupDimensions is the closed set of grouping dimensions the API serves.
var groupDimensions = map[string]bool{
	"cadence": true,
	"niche":   true,
	"revenue": true,
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateChannelID checks that a channel ID is well-formed and within DB
// limits. Returns the cleaned id and an empty string, or an error message.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > MaxChannelIDLen {
		return "", "channelId must be at most 32 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

// ValidateGroupDimension checks that a grouping dimension is one of the
// declared set: cadence, niche, revenue.
func ValidateGroupDimension(dim string) (string, string) {
	dim = strings.ToLower(strings.TrimSpace(dim))
	if dim == "" {
		return "", "dimension is required"
	}
	if !groupDimensions[dim] {
		return "", "dimension must be one of: cadence, niche, revenue"
	}
	return dim, ""
}
