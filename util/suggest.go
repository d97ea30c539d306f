package util

import (
	"sort"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// maxTypoDistance is the largest edit distance still offered as a suggestion.
const maxTypoDistance = 2

// Suggest picks the candidate the user most likely meant by input.
// Prefix-like inputs ("dec" for "decimal") are matched fuzzily first, then typos by edit distance.
func Suggest(input string, candidates []string) mo.Option[string] {
	if input == "" || len(candidates) == 0 {
		return mo.None[string]()
	}

	ranks := fuzzy.RankFindFold(input, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return mo.Some(ranks[0].Target)
	}

	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(input, a) < levenshtein.Distance(input, b)
	})
	if levenshtein.Distance(input, closest) > maxTypoDistance {
		return mo.None[string]()
	}
	return mo.Some(closest)
}
