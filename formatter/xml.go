package formatter

import (
	"strings"

	"github.com/theoremus-urban-solutions/mvg-incidents/siri"
)

// MarshalXML serializes a SIRI response to XML. Element order inside
// PtSituationElement follows the SIRI-SX schema; empty fields are omitted
// rather than written as empty tags.
func MarshalXML(res *siri.SiriResponse) []byte {
	var b strings.Builder
	b.WriteString(`<Siri xmlns="http://www.siri.org.uk/siri">`)
	sd := res.Siri.ServiceDelivery
	b.WriteString("<ServiceDelivery>")
	writeElem(&b, "ResponseTimestamp", sd.ResponseTimestamp)
	writeElem(&b, "ProducerRef", sd.ProducerRef)
	for _, sx := range sd.SituationExchangeDelivery {
		writeSituationExchangeXML(&b, sx)
	}
	b.WriteString("</ServiceDelivery>")
	b.WriteString("</Siri>")
	return []byte(b.String())
}

func writeSituationExchangeXML(b *strings.Builder, sx siri.SituationExchangeDelivery) {
	if sx.Version != "" {
		b.WriteString(`<SituationExchangeDelivery version="`)
		b.WriteString(xmlEscape(sx.Version))
		b.WriteString(`">`)
	} else {
		b.WriteString("<SituationExchangeDelivery>")
	}
	writeElem(b, "ResponseTimestamp", sx.ResponseTimestamp)
	b.WriteString("<Situations>")
	for _, el := range sx.Situations {
		writePtSituationXML(b, el)
	}
	b.WriteString("</Situations>")
	b.WriteString("</SituationExchangeDelivery>")
}

func writePtSituationXML(b *strings.Builder, el siri.PtSituationElement) {
	b.WriteString("<PtSituationElement>")
	writeElem(b, "CreationTime", el.CreationTime)
	writeElem(b, "ParticipantRef", el.ParticipantRef)
	writeElem(b, "SituationNumber", el.SituationNumber)
	if el.Source != nil && el.Source.SourceType != "" {
		b.WriteString("<Source>")
		writeElem(b, "SourceType", el.Source.SourceType)
		b.WriteString("</Source>")
	}
	writeElem(b, "Progress", el.Progress)
	for _, vp := range el.ValidityPeriod {
		if vp.StartTime == "" && vp.EndTime == "" {
			continue
		}
		b.WriteString("<ValidityPeriod>")
		writeElem(b, "StartTime", vp.StartTime)
		writeElem(b, "EndTime", vp.EndTime)
		b.WriteString("</ValidityPeriod>")
	}
	b.WriteString("<UndefinedReason/>")
	writeElem(b, "Severity", el.Severity)
	writeElem(b, "ReportType", el.ReportType)
	writeLangElems(b, "Summary", el.Summary)
	writeLangElems(b, "Description", el.Description)
	writeAffectsXML(b, el.Affects)
	writeInfoLinksXML(b, el.InfoLinks)
	b.WriteString("</PtSituationElement>")
}

func writeAffectsXML(b *strings.Builder, affects *siri.Affects) {
	if affects == nil || affects.Networks == nil || len(affects.Networks.AffectedNetwork) == 0 {
		return
	}
	b.WriteString("<Affects>")
	b.WriteString("<Networks>")
	for _, network := range affects.Networks.AffectedNetwork {
		b.WriteString("<AffectedNetwork>")
		writeElem(b, "NetworkRef", network.NetworkRef)
		if network.AffectedLines != nil {
			for _, line := range network.AffectedLines.AffectedLine {
				b.WriteString("<AffectedLine>")
				writeElem(b, "LineRef", line.LineRef)
				writeLangElems(b, "LineName", line.LineName)
				b.WriteString("</AffectedLine>")
			}
		}
		b.WriteString("</AffectedNetwork>")
	}
	b.WriteString("</Networks>")
	b.WriteString("</Affects>")
}

func writeInfoLinksXML(b *strings.Builder, links []siri.InfoLink) {
	if len(links) == 0 {
		return
	}
	b.WriteString("<InfoLinks>")
	for _, link := range links {
		b.WriteString("<InfoLink>")
		writeElem(b, "Uri", link.Uri)
		writeLangElems(b, "Label", link.Label)
		b.WriteString("</InfoLink>")
	}
	b.WriteString("</InfoLinks>")
}

// writeElem writes <tag>text</tag>, skipping empty text entirely.
func writeElem(b *strings.Builder, tag, text string) {
	if text == "" {
		return
	}
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(">")
	b.WriteString(xmlEscape(text))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}

// writeLangElems writes one element per translation, carrying the language
// as an xml:lang attribute when present.
func writeLangElems(b *strings.Builder, tag string, items []siri.NaturalLanguageString) {
	for _, item := range items {
		if item.Text == "" {
			continue
		}
		b.WriteString("<")
		b.WriteString(tag)
		if item.Lang != "" {
			b.WriteString(` xml:lang="`)
			b.WriteString(xmlEscape(item.Lang))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		b.WriteString(xmlEscape(item.Text))
		b.WriteString("</")
		b.WriteString(tag)
		b.WriteString(">")
	}
}

func xmlEscape(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	)
	return replacer.Replace(s)
}
