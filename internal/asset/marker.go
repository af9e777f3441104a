package asset

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var slugRunPattern = regexp.MustCompile(`[^A-Z0-9]+`)

// GenerateMarkerID derives the canonical marker identifier for an asset:
// CORA-<TYPE>-<SLUG>-<SUFFIX>, where TYPE is the first four characters of
// the asset type, SLUG is the uppercased name with punctuation runs
// collapsed to single hyphens, and SUFFIX is the last four digits of the
// millisecond timestamp. Identical inputs at the same instant produce the
// same marker; uniqueness over time comes from the timestamp suffix.
func GenerateMarkerID(name string, typ Type, now time.Time) string {
	slug := strings.Trim(slugRunPattern.ReplaceAllString(strings.ToUpper(name), "-"), "-")
	if slug == "" {
		slug = "ASSET"
	}

	typeTag := strings.ToUpper(string(typ))
	if typeTag == "" {
		typeTag = "GEN"
	}
	if len(typeTag) > 4 {
		typeTag = typeTag[:4]
	}

	ms := fmt.Sprintf("%d", now.UnixMilli())
	suffix := ms[len(ms)-4:]

	return fmt.Sprintf("CORA-%s-%s-%s", typeTag, slug, suffix)
}
