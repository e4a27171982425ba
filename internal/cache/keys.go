package cache

import (
	"strconv"
	"strings"
)

const (
	GlobalKeyPrefix = "agapept"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// SubmissionResultKey is where a scored submission response is cached.
func SubmissionResultKey(id int64) string {
	return GenerateCacheKey("submission", "result", strconv.FormatInt(id, 10))
}
