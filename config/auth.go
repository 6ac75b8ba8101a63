package config

import "strings"

// GetAuthSkipperPaths lists route paths served without credentials, from the
// comma separated AUTH_SKIP_PATHS.
func GetAuthSkipperPaths() []string {
	var out []string
	for _, p := range strings.Split(GetEnv("AUTH_SKIP_PATHS", ""), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
