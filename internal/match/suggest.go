package match

import (
	"sort"
	"strings"
)

// MinSimilarity is the score below which a candidate is not worth suggesting.
const MinSimilarity = 0.6

// Suggest returns up to limit candidates closest to name, best first.
//
// Qualified names ("path/to/pkg.Type") are ranked by their type names, case
// insensitively; the whole qualified name only breaks ties, so a wrong package
// path with the right type name still finds the type.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		short float64
		full  float64
	}

	want := strings.ToLower(name)
	wantShort := strings.ToLower(shortName(name))

	var ranked []scored
	for _, c := range candidates {
		if c == name {
			continue
		}

		short := Similarity(wantShort, strings.ToLower(shortName(c)))
		if short < MinSimilarity {
			continue
		}

		ranked = append(ranked, scored{name: c, short: short, full: Similarity(want, strings.ToLower(c))})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].short != ranked[j].short {
			return ranked[i].short > ranked[j].short
		}
		if ranked[i].full != ranked[j].full {
			return ranked[i].full > ranked[j].full
		}
		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}

func shortName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 && i > strings.LastIndex(qualified, "/") {
		return qualified[i+1:]
	}

	return qualified
}
