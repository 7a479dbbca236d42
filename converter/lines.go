package converter

import "github.com/theoremus-urban-solutions/mvg-incidents/mvg"

// DedupeLines removes duplicate lines, preserving first-occurrence order.
// Two lines are the same line when their labels match; the feed regularly
// repeats a label with differing secondary fields (sev flags, diva IDs).
// Lines without a label cannot be keyed and are kept as they are.
func DedupeLines(lines []mvg.Line) []mvg.Line {
	deduped := make([]mvg.Line, 0, len(lines))
	seenLabels := map[string]bool{}
	for _, l := range lines {
		if l.Label != "" {
			if seenLabels[l.Label] {
				continue
			}
			seenLabels[l.Label] = true
		}
		deduped = append(deduped, l)
	}
	return deduped
}
