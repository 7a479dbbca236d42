package converter

import "github.com/theoremus-urban-solutions/mvg-incidents/mvg"

// FilterByType returns the messages whose type equals target, in source
// order. The comparison is exact, so messages without a type field only
// match an empty target.
func FilterByType(msgs []mvg.Message, target string) []mvg.Message {
	matched := make([]mvg.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Type == target {
			matched = append(matched, m)
		}
	}
	return matched
}
