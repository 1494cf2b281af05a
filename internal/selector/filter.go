package selector

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FilterOptions returns the options matching query. Labels are ranked with a
// normalised fuzzy match; when nothing matches fuzzily, a case-insensitive
// substring match on label or value is used instead.
func FilterOptions(opts []Option, query string) []Option {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneOptions(opts)
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, Labels(opts))
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Option, 0, len(matches))
		for idx, opt := range opts {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, opt)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Option, 0, len(opts))
	for _, opt := range opts {
		if strings.Contains(strings.ToLower(opt.Label), lower) || strings.Contains(strings.ToLower(opt.Value), lower) {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}

// BestMatchIndex returns the index of the option that best matches query:
// exact label, then label prefix, then label substring, then the closest
// fuzzy rank. It returns -1 for an empty list.
func BestMatchIndex(opts []Option, query string) int {
	if len(opts) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, opt := range opts {
		if strings.EqualFold(opt.Label, trimmed) {
			return i
		}
	}
	for i, opt := range opts {
		if strings.HasPrefix(strings.ToLower(opt.Label), lower) {
			return i
		}
	}
	for i, opt := range opts {
		if strings.Contains(strings.ToLower(opt.Label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, Labels(opts))
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(opts) {
		return 0
	}
	return best.OriginalIndex
}
