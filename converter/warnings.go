package converter

import (
	"github.com/rs/zerolog"
)

// Warning type constants
const (
	WarningNoTitle       = "no_title"
	WarningNoDescription = "no_description"
	WarningBadTimestamp  = "bad_timestamp"
	WarningLineNoLabel   = "line_no_label"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects per-field problems during conversion and logs
// consolidated summaries instead of one line per occurrence
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many occurrences of a warning type were recorded.
func (w *WarningAggregator) Count(warningType string) int {
	info := w.warnings[warningType]
	if info == nil {
		return 0
	}
	return info.count
}

// LogAll writes one consolidated line per collected warning type.
func (w *WarningAggregator) LogAll(logger zerolog.Logger) {
	if len(w.warnings) == 0 {
		return
	}

	for warningType, info := range w.warnings {
		logger.Warn().
			Str("warning", warningType).
			Int("count", info.count).
			Strs("examples", info.examples).
			Msg(describeWarning(warningType))
	}
}

// describeWarning states the problem and the substitution applied for it.
func describeWarning(warningType string) string {
	switch warningType {
	case WarningNoTitle:
		return "messages with no usable title; emitting empty title"
	case WarningNoDescription:
		return "messages with no usable description; emitting empty description"
	case WarningBadTimestamp:
		return "timestamps outside the printable range; emitting placeholder"
	case WarningLineNoLabel:
		return "lines with no label; kept without deduplication"
	default:
		return "unexpected field problem; emitting fallback value"
	}
}
