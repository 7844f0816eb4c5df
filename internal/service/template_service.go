// internal/service/template_service.go
package service

import (
	"strings"
)

// RenderTemplate substitutes {key} placeholders with the given values.
// Fallbacks for empty values are the caller's job; each placeholder needs its
// own phrasing.
func RenderTemplate(template string, data map[string]string) string {
	result := template
	for k, v := range data {
		result = strings.ReplaceAll(result, "{"+k+"}", v)
	}
	return result
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
