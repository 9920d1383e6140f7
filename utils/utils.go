package utils

import (
	rndm "math/rand"
	"slices"
	"strconv"
	"strings"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// NewRecipeID builds a timestamp-plus-random id, readable and sortable
// enough for log output.
func NewRecipeID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return ts + "-" + strings.ToLower(GenerateRandomString(5))
}

// --- Slice Helpers ---

func Contains(slice []string, value string) bool {
	return slices.Contains(slice, value)
}

// SplitTags takes a comma-separated string and returns a cleaned []string
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	var tags []string
	seen := make(map[string]bool)

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag)
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}

// NowISO returns the current time in the RFC3339 form every store
// timestamp uses.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
