package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	hyphenRuns   = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly slug
func Slugify(s string) string {
	// Convert to lowercase
	s = strings.ToLower(s)

	// Replace spaces with hyphens
	s = strings.ReplaceAll(s, " ", "-")

	// Remove non-alphanumeric characters except hyphens
	s = nonSlugChars.ReplaceAllString(s, "")

	// Remove multiple consecutive hyphens
	s = hyphenRuns.ReplaceAllString(s, "-")

	// Trim hyphens from start and end
	return strings.Trim(s, "-")
}

// ReceiptNo renders the number printed on a receipt ticket,
// e.g. R-20240115-000042
func ReceiptNo(id uint, date time.Time) string {
	return fmt.Sprintf("R-%s-%06d", date.Format("20060102"), id)
}
