package mapping

import (
	"strings"
	"unicode"
)

// Internal gender codes.
const (
	GenderMale   = "erkek"
	GenderFemale = "kız"
	GenderUnisex = "unisex"
)

type gender struct {
	Code  string
	Label string // search API value
}

var genders = []gender{
	{Code: GenderMale, Label: "Erkek"},
	{Code: GenderFemale, Label: "Kız"},
	{Code: GenderUnisex, Label: "Unisex"},
}

// GenderCodes lists the internal codes in display order.
func GenderCodes() []string {
	out := make([]string, len(genders))
	for i, g := range genders {
		out[i] = g.Code
	}
	return out
}

// GenderLabel returns the search API label for an internal code. Unknown codes
// pass through.
func GenderLabel(code string) string {
	for _, g := range genders {
		if g.Code == code {
			return g.Label
		}
	}
	return code
}

// GenderFromLabel maps an external label ("Erkek", "KIZ", "Unisex") to an
// internal code.
func GenderFromLabel(label string) (string, bool) {
	for _, g := range genders {
		if EqualFold(label, g.Label) || EqualFold(label, g.Code) {
			return g.Code, true
		}
	}
	return "", false
}

// InferGender scans category names for gender words. Male words win when both
// appear.
func InferGender(names ...string) string {
	for _, n := range names {
		if ContainsFold(n, "erkek", "boy") {
			return GenderMale
		}
	}
	for _, n := range names {
		if ContainsFold(n, "kız", "girl") {
			return GenderFemale
		}
	}
	return GenderUnisex
}

// EqualFold compares two labels under both casing rules.
func EqualFold(a, b string) bool {
	for _, x := range lowerings(a) {
		for _, y := range lowerings(b) {
			if x == y {
				return true
			}
		}
	}
	return false
}

func lowerings(s string) [2]string {
	s = strings.TrimSpace(s)
	return [2]string{strings.ToLower(s), strings.ToLowerSpecial(unicode.TurkishCase, s)}
}

// ContainsFold reports whether s contains any of subs, ignoring case under both
// the default and the Turkish casing rules ("KIZ" and "Kız" both match "kız").
func ContainsFold(s string, subs ...string) bool {
	hay := lowerings(s)
	for _, sub := range subs {
		sub = strings.ToLower(sub)
		if strings.Contains(hay[0], sub) || strings.Contains(hay[1], sub) {
			return true
		}
	}
	return false
}
