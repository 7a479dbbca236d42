package converter

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/mvg-incidents/htmltext"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
	"github.com/theoremus-urban-solutions/mvg-incidents/siri"
	"github.com/theoremus-urban-solutions/mvg-incidents/utils"
)

// BuildSituationExchange maps messages onto a SIRI-SX delivery. Text fields
// are normalized the same way Transform normalizes them, and line lists are
// deduplicated before they become AffectedLine refs.
func (c *Converter) BuildSituationExchange(msgs []mvg.Message, codespace string) siri.SituationExchangeDelivery {
	if codespace == "" {
		codespace = "UNKNOWN"
	}
	now := time.Now().UnixMilli()
	elements := make([]siri.PtSituationElement, 0, len(msgs))
	for i, m := range msgs {
		title := htmltext.Normalize(m.Title)
		description := htmltext.Normalize(m.Description)

		el := siri.PtSituationElement{
			ParticipantRef:  codespace,
			SituationNumber: codespace + ":SituationNumber:" + strconv.Itoa(i+1),
			Source:          &siri.SituationSource{SourceType: "directReport"},
			Severity:        mapMessageTypeToSeverity(m.Type),
			ReportType:      mapMessageTypeToReportType(m.Type),
		}
		if ms := m.Publication.Millis(); ms > 0 {
			el.CreationTime = utils.Iso8601FromUnixMillis(ms)
		}
		if title != "" {
			el.Summary = []siri.NaturalLanguageString{{Lang: "de", Text: title}}
		}
		if description != "" {
			el.Description = []siri.NaturalLanguageString{{Lang: "de", Text: description}}
		}

		// Validity window from the message epochs. Progress flips to closed
		// once the window end is in the past.
		var vp siri.ValidityPeriod
		if ms := m.ValidFrom.Millis(); ms > 0 {
			vp.StartTime = utils.Iso8601FromUnixMillis(ms)
		}
		end := m.ValidTo.Millis()
		if end > 0 {
			vp.EndTime = utils.Iso8601FromUnixMillis(end)
		}
		if vp.StartTime != "" || vp.EndTime != "" {
			el.ValidityPeriod = []siri.ValidityPeriod{vp}
		}
		if end > 0 && end < now {
			el.Progress = "closed"
		} else {
			el.Progress = "open"
		}

		lines := DedupeLines(m.Lines)
		affected := make([]siri.AffectedLine, 0, len(lines))
		for _, l := range lines {
			if l.Label == "" {
				continue
			}
			affected = append(affected, siri.AffectedLine{LineRef: codespace + ":Line:" + l.Label})
		}
		if len(affected) > 0 {
			el.Affects = &siri.Affects{
				Networks: &siri.AffectedNetworks{
					AffectedNetwork: []siri.AffectedNetwork{{
						NetworkRef:    codespace + ":Network:" + codespace,
						AffectedLines: &siri.AffectedLines{AffectedLine: affected},
					}},
				},
			}
		}

		for _, link := range m.Links {
			if link.Href == "" {
				continue
			}
			il := siri.InfoLink{Uri: link.Href}
			if link.Name != "" {
				il.Label = []siri.NaturalLanguageString{{Lang: "de", Text: link.Name}}
			}
			el.InfoLinks = append(el.InfoLinks, il)
		}

		elements = append(elements, el)
	}
	return siri.SituationExchangeDelivery{
		Version:           "2.0",
		ResponseTimestamp: utils.Iso8601Now(),
		Situations:        elements,
	}
}

// mapMessageTypeToSeverity maps an upstream message type to SIRI Severity
func mapMessageTypeToSeverity(messageType string) string {
	switch messageType {
	case mvg.MessageTypeIncident:
		return "severe"
	case "SCHEDULE_CHANGE", "PLANNED":
		return "slight"
	default:
		return "undefined"
	}
}

// mapMessageTypeToReportType maps an upstream message type to SIRI ReportType
func mapMessageTypeToReportType(messageType string) string {
	switch messageType {
	case mvg.MessageTypeIncident:
		return "incident"
	default:
		return "general"
	}
}
