package database

import (
	"regexp"
	"strings"
)

// PartitionKeyPrefix is prepended to every normalized organization name.
const PartitionKeyPrefix = "org_"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// partitionKeyPattern matches the only identifiers PartitionKey can produce.
// Repositories validate keys against it before interpolating them into DDL.
var partitionKeyPattern = regexp.MustCompile(`^org_[a-z0-9_]+$`)

// PartitionKey normalizes an organization name to the identifier of its data
// partition. The mapping is deterministic: lowercase, trimmed, runs of
// non-alphanumeric characters collapsed to single underscores, and prefixed
// with "org_". An organization name that normalizes to nothing falls back to
// "org_default".
func PartitionKey(organizationName string) string {
	normalized := strings.ToLower(strings.TrimSpace(organizationName))
	normalized = nonAlphanumeric.ReplaceAllString(normalized, "_")
	normalized = strings.Trim(normalized, "_")

	if normalized == "" {
		normalized = "default"
	}

	return PartitionKeyPrefix + normalized
}

// ValidPartitionKey reports whether key is a well-formed partition identifier.
func ValidPartitionKey(key string) bool {
	return partitionKeyPattern.MatchString(key)
}
