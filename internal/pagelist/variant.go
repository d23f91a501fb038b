package pagelist

import "strings"

// Variant names the kind of collection being paginated.
type Variant string

const (
	VariantItem    Variant = "item"
	VariantGroup   Variant = "group"
	VariantArticle Variant = "article"
	VariantPage    Variant = "page"
)

// ParseVariant maps a name to a Variant. The names used by older themes
// ("image" and "album") are accepted as aliases.
func ParseVariant(name string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "item", "image":
		return VariantItem, true
	case "group", "album":
		return VariantGroup, true
	case "article":
		return VariantArticle, true
	case "page":
		return VariantPage, true
	}
	return "", false
}
