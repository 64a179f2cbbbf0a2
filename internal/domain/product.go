package domain

// Product categories offered by the form
const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHomeKitchen = "Home & Kitchen"
	CategoryGeneral     = "General"
	CategoryOther       = "Other"
)

// Tones offered by the form
const (
	ToneProfessional = "Professional"
	ToneCasual       = "Casual"
	ToneLuxury       = "Luxury"
	ToneWitty        = "Witty"
)

// DefaultTone is used when a record is created without a tone
const DefaultTone = ToneProfessional

// Categories lists the category selector options in display order
var Categories = []string{CategoryElectronics, CategoryFashion, CategoryHomeKitchen, CategoryOther}

// Tones lists the tone selector options in display order
var Tones = []string{ToneProfessional, ToneCasual, ToneLuxury, ToneWitty}

// ProductRecord is one product description request built from a form submission
type ProductRecord struct {
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Attributes map[string]string `json:"attributes"`
	Tone       string            `json:"tone"`
}

// NewProductRecord builds a record, copying attributes so later changes to the
// caller's map do not leak into the record.
func NewProductRecord(name, category string, attributes map[string]string, tone string) *ProductRecord {
	if tone == "" {
		tone = DefaultTone
	}

	attrs := make(map[string]string, len(attributes))
	for k, v := range attributes {
		attrs[k] = v
	}

	return &ProductRecord{
		Name:       name,
		Category:   category,
		Attributes: attrs,
		Tone:       tone,
	}
}

// DescriptionRequest is the JSON body of a description API call.
// Features is "Key: Value" text; entries in Attributes take precedence over it.
type DescriptionRequest struct {
	Name       string            `json:"name"`
	Category   string            `json:"category"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Features   string            `json:"features,omitempty"`
	Tone       string            `json:"tone,omitempty"`
}
