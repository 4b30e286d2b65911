// Package view turns a raw inventory or vendor collection plus a filter and
// sort selection into the ordered, summarized view the dashboard renders.
//
// Everything here is pure: inputs are never mutated and identical inputs
// always produce deep-equal outputs, so callers may memoize freely.
package view

import (
	"regexp"
	"strconv"
	"strings"

	"campconnect/internal/models"
)

// Sentinel selections meaning "no filtering applied"
const (
	AllCategories = "All Categories"
	AllProducts   = "All Products"
	AllStatuses   = "All Statuses"
	AnyDistance   = "Any Distance"
	AllTags       = "All"
)

var distancePattern = regexp.MustCompile(`(?i)^\s*within\s+(\d+(?:\.\d+)?)\s*km\s*$`)

// TextMatches reports whether needle occurs, case-insensitively, in any of
// the fields. An empty needle always matches.
func TextMatches(fields []string, needle string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// CategoryMatches reports whether category equals the selection exactly, or
// the selection is one of the all-categories sentinels.
func CategoryMatches(category, selected string) bool {
	return selected == AllCategories || selected == AllProducts || selected == category
}

// StatusMatches reports whether the lower-cased selection names status, or
// the selection is the all-statuses sentinel.
func StatusMatches(status models.StockStatus, selected string) bool {
	return selected == AllStatuses || strings.ToLower(selected) == string(status)
}

// NumericAtMost reports whether value is within the threshold selection.
// Thresholds read "Within 25km" or a bare number; anything unparseable fails.
func NumericAtMost(value float64, threshold string) bool {
	if threshold == AnyDistance {
		return true
	}
	limit, ok := ParseDistance(threshold)
	if !ok {
		return false
	}
	return value <= limit
}

// ParseDistance extracts the kilometre limit from a distance selection
func ParseDistance(threshold string) (float64, bool) {
	if m := distancePattern.FindStringSubmatch(threshold); m != nil {
		threshold = m[1]
	}
	limit, err := strconv.ParseFloat(strings.TrimSpace(threshold), 64)
	if err != nil || limit < 0 {
		return 0, false
	}
	return limit, true
}

// CertificationIncludes reports whether any certification contains tag,
// case-insensitively. "Local" therefore matches "Local Women-Owned".
func CertificationIncludes(certifications []string, tag string) bool {
	if tag == AllTags {
		return true
	}
	tag = strings.ToLower(tag)
	for _, c := range certifications {
		if strings.Contains(strings.ToLower(c), tag) {
			return true
		}
	}
	return false
}
