package auth

import "strings"

// RequiresAuth decides whether a request path needs authentication given the
// configured exclusion patterns. It fails safe: an empty path or an empty
// exclusion list always requires auth.
//
// A pattern ending in '*' matches any path sharing its literal prefix.
// Every other pattern matches on exact equality after trailing-slash
// normalization, so "/api/v1/status" and "/api/v1/status/" are equivalent.
func RequiresAuth(path string, excludedPaths []string) bool {
	if path == "" || len(excludedPaths) == 0 {
		return true
	}

	for _, excluded := range excludedPaths {
		if excluded == "" {
			continue
		}
		if strings.HasSuffix(excluded, "*") {
			prefix := strings.TrimRight(excluded, "*")
			if strings.HasPrefix(path, prefix) {
				return false
			}
			continue
		}
		if strings.TrimRight(path, "/") == strings.TrimRight(excluded, "/") {
			return false
		}
	}

	return true
}
