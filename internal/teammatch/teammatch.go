// Package teammatch matches user-supplied team names against the display
// names the upstream uses. Users type "Lakers"; the upstream says
// "Los Angeles Lakers".
package teammatch

import "strings"

// aliases maps common short forms to the full names the upstream uses.
// Applied to both sides of a comparison.
var aliases = map[string]string{
	// MLB
	"athletics":    "oakland athletics",
	"a's":          "oakland athletics",
	"oakland a's":  "oakland athletics",
	"dodgers":      "los angeles dodgers",
	"angels":       "los angeles angels",
	"yankees":      "new york yankees",
	"mets":         "new york mets",
	"red sox":      "boston red sox",
	"white sox":    "chicago white sox",
	"blue jays":    "toronto blue jays",
	"guardians":    "cleveland guardians",
	"diamondbacks": "arizona diamondbacks",
	"rays":         "tampa bay rays",
	// WNBA
	"liberty": "new york liberty",
	"aces":    "las vegas aces",
	"sky":     "chicago sky",
	"sun":     "connecticut sun",
	"storm":   "seattle storm",
	"lynx":    "minnesota lynx",
	"sparks":  "los angeles sparks",
	"mercury": "phoenix mercury",
	"mystics": "washington mystics",
	"fever":   "indiana fever",
	"wings":   "dallas wings",
	"dream":   "atlanta dream",
	// La Liga
	"barca":           "barcelona",
	"madrid":          "real madrid",
	"atletico":        "atlético madrid",
	"atletico madrid": "atlético madrid",
	"athletic":        "athletic bilbao",
	"sociedad":        "real sociedad",
	"betis":           "real betis",
}

// stopwords are too generic to establish a match on their own.
var stopwords = map[string]struct{}{
	"the":    {},
	"of":     {},
	"and":    {},
	"fc":     {},
	"united": {},
	"city":   {},
}

// Normalize lowercases, trims, and expands known aliases.
func Normalize(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if full, ok := aliases[normalized]; ok {
		return full
	}
	return normalized
}

// Matches reports whether a requested team name and an upstream display name
// refer to the same team. Tries, in order: normalized equality, substring
// containment in either direction, and overlap of significant words.
func Matches(requested, candidate string) bool {
	req := Normalize(requested)
	cand := Normalize(candidate)

	if req == "" || cand == "" {
		return false
	}
	if req == cand {
		return true
	}
	if strings.Contains(cand, req) || strings.Contains(req, cand) {
		return true
	}

	reqWords := significantWords(req)
	candWords := significantWords(cand)
	if len(reqWords) == 0 || len(candWords) == 0 {
		return false
	}
	for word := range reqWords {
		if _, ok := candWords[word]; ok {
			return true
		}
	}
	return false
}

func significantWords(name string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(name) {
		if _, skip := stopwords[word]; !skip {
			words[word] = struct{}{}
		}
	}
	return words
}
