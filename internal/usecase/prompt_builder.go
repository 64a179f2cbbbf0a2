package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/copysmith/backend/internal/domain"
)

// categoryInstructions holds the copywriter persona for each known category
var categoryInstructions = map[string]string{
	domain.CategoryElectronics: "You are a tech copywriter. Focus on specifications, performance, and compatibility.",
	domain.CategoryFashion:     "You are a fashion stylist. Focus on fabric feel, fit, and occasion.",
	domain.CategoryHomeKitchen: "You are an interior designer. Focus on aesthetics, durability, and usage.",
	domain.CategoryGeneral:     "You are a professional copywriter. Focus on benefits and value proposition.",
}

// SystemPrompt returns the copywriting instruction for a category and tone.
// Unknown categories, "Other" included, use the General persona.
func SystemPrompt(category, tone string) string {
	instruction, ok := categoryInstructions[category]
	if !ok {
		instruction = categoryInstructions[domain.CategoryGeneral]
	}
	return fmt.Sprintf("%s Write in a %s tone. Do not invent features not listed.", instruction, tone)
}

// UserMessage renders the product block sent as the user turn.
// Features are listed in key order.
func UserMessage(record *domain.ProductRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product Name: %s\n", record.Name)
	fmt.Fprintf(&b, "Category: %s\n", record.Category)
	b.WriteString("Features:\n")

	for _, key := range sortedKeys(record.Attributes) {
		fmt.Fprintf(&b, "- %s: %s\n", key, record.Attributes[key])
	}

	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
