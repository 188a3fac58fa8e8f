package slug

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from a product name.
//
// Examples:
//   - "Classic Kaju Katli" → "classic-kaju-katli"
//   - "Sea Salt  Caramel Cookies!" → "sea-salt-caramel-cookies"
func Generate(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))

	// Fold the accented characters that show up in dessert names.
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e",
		"à", "a", "â", "a",
		"ç", "c", "ö", "o",
		"ü", "u", "û", "u",
	)
	s = replacer.Replace(s)

	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
