// Package mapping holds the lookup tables shared by the query builder and the
// response normalizer. Every internal <-> external translation lives here.
package mapping

// Version identifies the table revision. Bump it whenever an entry changes so
// cached payloads and fixtures can be told apart.
const Version = "2024.11.1"

// categoryCodes maps internal category slugs to the search API's numeric codes.
var categoryCodes = map[string]string{
	"bebek-arabasi":   "3779",
	"oto-koltugu":     "3780",
	"mama-sandalyesi": "3782",
	"park-yatak":      "3785",
	"bebek-bezi":      "2111",
	"islak-mendil":    "2112",
	"biberon-emzik":   "2205",
	"emzirme":         "2210",
	"oyuncak":         "4100",
	"bebek-giyim":     "5001",
	"anne-bakim":      "6010",
}

var categorySlugs = invert(categoryCodes)

// CategoryCode returns the numeric code for an internal slug.
func CategoryCode(slug string) (string, bool) {
	code, ok := categoryCodes[slug]
	return code, ok
}

// CategorySlug translates an external category code into the internal slug.
// Unmapped codes pass through unchanged.
func CategorySlug(code string) string {
	if slug, ok := categorySlugs[code]; ok {
		return slug
	}
	return code
}

// CategorySlugs lists every known slug.
func CategorySlugs() []string {
	out := make([]string, 0, len(categoryCodes))
	for slug := range categoryCodes {
		out = append(out, slug)
	}
	return out
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
