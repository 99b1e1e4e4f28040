package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var (
	slugNonAlnum = regexp.MustCompile("[^a-z0-9-]")
	slugHyphens  = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugNonAlnum.ReplaceAllString(s, "")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateSaleNo generates a unique sale/invoice number, e.g. "VND-3F2A91BC"
func GenerateSaleNo() string {
	return "VND-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateServiceOrderNo generates a unique service order number, e.g. "OS-7C01D4E2"
func GenerateServiceOrderNo() string {
	return "OS-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateWarrantyProtocol generates a warranty protocol number, e.g. "GAR-2026-9A41F0C3".
// Random suffix instead of a time-derived one so two documents issued in the
// same second cannot collide.
func GenerateWarrantyProtocol(issuedAt time.Time) string {
	return fmt.Sprintf("GAR-%d-%s", issuedAt.Year(), strings.ToUpper(uuid.New().String()[:8]))
}

// GenerateProductCode generates a unique product code
func GenerateProductCode() string {
	return "PROD-" + strings.ToUpper(uuid.New().String()[:8])
}
