package storage

import "strings"

// GenerateCacheKey allows to generate consistent keys with a small probability of conflicts
/**
version: model version which is stored under this key, if model has inconsistent changes, the version can be increased, example v1, v2, v3
platform: e.g. "telegram, cli" etc
domain: "quiz_session, quiz_snapshot, admin, stats"
uniqueParts: "123 as user id or latte as drink name"
*/
func GenerateCacheKey(version, platform, domain string, uniqueParts ...string) string {
	parts := []string{
		version,
		strings.ToLower(platform),
		strings.ToLower(domain),
	}

	parts = append(parts, uniqueParts...)

	return strings.Join(parts, "/")
}

// KeyTail returns the unique parts of a key built by GenerateCacheKey.
func KeyTail(key string) []string {
	parts := strings.Split(key, "/")
	if len(parts) <= 3 {
		return nil
	}

	return parts[3:]
}
