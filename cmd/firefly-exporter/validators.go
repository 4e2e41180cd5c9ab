package main

import (
	"strings"
)

func isPort(val int) bool {
	return val > 0 && val <= 65535
}

func isHTTPPath(val string) bool {
	if !strings.HasPrefix(val, "/") || strings.ContainsAny(val, " ?#") {
		return false
	}

	return val != "/health" && val != "/ready"
}

func isLogLevel(val string) bool {
	switch strings.ToLower(val) {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}
