package converter

import (
	"time"

	"github.com/theoremus-urban-solutions/mvg-incidents/htmltext"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
	"github.com/theoremus-urban-solutions/mvg-incidents/utils"
)

// Converter turns decoded messages into output records
type Converter struct {
	loc      *time.Location
	warnings *WarningAggregator
}

// New creates a converter that formats timestamps in loc
func New(loc *time.Location) *Converter {
	return &Converter{
		loc:      loc,
		warnings: NewWarningAggregator(),
	}
}

// Warnings exposes the aggregator for consolidated logging after a run.
func (c *Converter) Warnings() *WarningAggregator { return c.warnings }

// Transform converts each message into an incident record. Field problems
// degrade to placeholders and a warning; they never drop a record.
func (c *Converter) Transform(msgs []mvg.Message) []Incident {
	incidents := make([]Incident, 0, len(msgs))
	for _, m := range msgs {
		incidents = append(incidents, c.transform(m))
	}
	return incidents
}

func (c *Converter) transform(m mvg.Message) Incident {
	ref := messageRef(m)

	inc := Incident{
		Title:       htmltext.Normalize(m.Title),
		Description: htmltext.Normalize(m.Description),
		Type:        m.Type,
		Provider:    m.Provider,
		Lines:       c.dedupeLines(m.Lines, ref),
		Links:       m.Links,
	}
	if inc.Title == "" {
		c.warnings.Add(WarningNoTitle, ref)
	}
	if inc.Description == "" {
		c.warnings.Add(WarningNoDescription, ref)
	}

	inc.Publication = c.formatEpoch(m.Publication, ref)
	inc.ValidFrom = c.formatEpoch(m.ValidFrom, ref)
	inc.ValidTo = c.formatEpoch(m.ValidTo, ref)
	if m.PublicationDuration != nil {
		w := c.window(*m.PublicationDuration, ref)
		inc.PublicationDuration = &w
	}
	for _, d := range m.IncidentDurations {
		inc.IncidentDurations = append(inc.IncidentDurations, c.window(d, ref))
	}
	return inc
}

func (c *Converter) dedupeLines(lines []mvg.Line, ref string) []mvg.Line {
	for _, l := range lines {
		if l.Label == "" {
			c.warnings.Add(WarningLineNoLabel, ref)
		}
	}
	return DedupeLines(lines)
}

// formatEpoch renders an epoch for display. Absent timestamps stay empty
// without a warning; present-but-unusable ones warn and degrade to the
// empty placeholder.
func (c *Converter) formatEpoch(e mvg.Epoch, ref string) string {
	ms := e.Millis()
	if ms == 0 {
		return ""
	}
	s, ok := utils.FormatEpochMillis(ms, c.loc)
	if !ok {
		c.warnings.Add(WarningBadTimestamp, ref)
		return ""
	}
	return s
}

func (c *Converter) window(d mvg.Duration, ref string) Window {
	return Window{
		From: c.formatEpoch(d.From, ref),
		To:   c.formatEpoch(d.To, ref),
	}
}

// messageRef derives a short identifier for warning examples: the first
// line label, or a title prefix when no labeled line is present.
func messageRef(m mvg.Message) string {
	if len(m.Lines) > 0 && m.Lines[0].Label != "" {
		return m.Lines[0].Label
	}
	title := []rune(m.Title)
	if len(title) == 0 {
		return "(untitled)"
	}
	if len(title) > 40 {
		title = title[:40]
	}
	return string(title)
}
