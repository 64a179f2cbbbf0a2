package usecase

import (
	"strings"

	"github.com/copysmith/backend/internal/domain"
)

// ParseAttributes turns "Key: Value" lines into an attribute mapping.
// Each line is split on its first colon and both halves are trimmed. Lines
// without a colon are skipped, and a repeated key keeps its last value.
func ParseAttributes(text string) map[string]string {
	attributes := make(map[string]string)

	for _, line := range strings.Split(text, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		attributes[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return attributes
}

// RecordFromText builds a product record from raw form fields
func RecordFromText(name, category, attributesText, tone string) *domain.ProductRecord {
	return domain.NewProductRecord(name, category, ParseAttributes(attributesText), tone)
}

// RecordFromRequest builds a product record from an API request
func RecordFromRequest(req *domain.DescriptionRequest) *domain.ProductRecord {
	attributes := ParseAttributes(req.Features)
	for k, v := range req.Attributes {
		attributes[k] = v
	}
	return domain.NewProductRecord(req.Name, req.Category, attributes, req.Tone)
}
