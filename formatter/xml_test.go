package formatter

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mvg-incidents/siri"
)

func sampleSituation() siri.PtSituationElement {
	return siri.PtSituationElement{
		CreationTime:    "2024-01-01T09:20:45Z",
		ParticipantRef:  "MVG",
		SituationNumber: "MVG:SituationNumber:1",
		Source:          &siri.SituationSource{SourceType: "directReport"},
		Progress:        "open",
		ValidityPeriod: []siri.ValidityPeriod{
			{StartTime: "2024-01-01T09:20:45Z", EndTime: "2024-01-01T11:20:45Z"},
		},
		Severity:    "severe",
		ReportType:  "incident",
		Summary:     []siri.NaturalLanguageString{{Lang: "de", Text: "Störung U3 & U6"}},
		Description: []siri.NaturalLanguageString{{Lang: "de", Text: "Signalstörung <behoben>"}},
		Affects: &siri.Affects{
			Networks: &siri.AffectedNetworks{
				AffectedNetwork: []siri.AffectedNetwork{{
					NetworkRef: "MVG:Network:MVG",
					AffectedLines: &siri.AffectedLines{
						AffectedLine: []siri.AffectedLine{
							{LineRef: "MVG:Line:U3"},
							{LineRef: "MVG:Line:U6"},
						},
					},
				}},
			},
		},
		InfoLinks: []siri.InfoLink{{
			Uri:   "https://www.mvg.de/dienste/betriebsaenderungen.html",
			Label: []siri.NaturalLanguageString{{Lang: "de", Text: "Weitere Informationen"}},
		}},
	}
}

func TestMarshalXML(t *testing.T) {
	t.Parallel()

	res := WrapSituationExchangeResponse(siri.SituationExchangeDelivery{
		Version:           "2.0",
		ResponseTimestamp: "2024-01-01T12:00:00Z",
		Situations:        []siri.PtSituationElement{sampleSituation()},
	}, "MVG")

	got := string(MarshalXML(res))

	assert.True(t, strings.HasPrefix(got, `<Siri xmlns="http://www.siri.org.uk/siri">`))
	assert.Contains(t, got, "<ProducerRef>MVG</ProducerRef>")
	assert.Contains(t, got, `<SituationExchangeDelivery version="2.0">`)
	assert.Contains(t, got, "<SituationNumber>MVG:SituationNumber:1</SituationNumber>")
	assert.Contains(t, got, "<Source><SourceType>directReport</SourceType></Source>")
	assert.Contains(t, got, "<Progress>open</Progress>")
	assert.Contains(t, got, "<ValidityPeriod><StartTime>2024-01-01T09:20:45Z</StartTime><EndTime>2024-01-01T11:20:45Z</EndTime></ValidityPeriod>")
	assert.Contains(t, got, "<UndefinedReason/>")
	assert.Contains(t, got, `<Summary xml:lang="de">Störung U3 &amp; U6</Summary>`)
	assert.Contains(t, got, `<Description xml:lang="de">Signalstörung &lt;behoben&gt;</Description>`)
	assert.Contains(t, got, "<LineRef>MVG:Line:U3</LineRef>")
	assert.Contains(t, got, "<Uri>https://www.mvg.de/dienste/betriebsaenderungen.html</Uri>")

	// The document must be well formed.
	require.NoError(t, xml.Unmarshal(MarshalXML(res), new(struct{})))
}

func TestMarshalXMLOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	res := WrapSituationExchangeResponse(siri.SituationExchangeDelivery{
		Version:    "2.0",
		Situations: []siri.PtSituationElement{{ParticipantRef: "MVG", Progress: "open", ReportType: "incident"}},
	}, "MVG")

	got := string(MarshalXML(res))

	assert.NotContains(t, got, "<CreationTime>")
	assert.NotContains(t, got, "<Source>")
	assert.NotContains(t, got, "<ValidityPeriod>")
	assert.NotContains(t, got, "<Severity>")
	assert.NotContains(t, got, "<Summary")
	assert.NotContains(t, got, "<Affects>")
	assert.NotContains(t, got, "<InfoLinks>")
	assert.Contains(t, got, "<Progress>open</Progress>")
}

func TestMarshalXMLEmptyDelivery(t *testing.T) {
	t.Parallel()

	res := WrapSituationExchangeResponse(siri.SituationExchangeDelivery{Version: "2.0"}, "MVG")

	got := string(MarshalXML(res))
	assert.Contains(t, got, "<Situations></Situations>", "zero situations still renders the delivery")
}

func TestXMLEscape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a &amp; b &lt;c&gt; &quot;d&quot; &apos;e&apos;", xmlEscape(`a & b <c> "d" 'e'`))
	assert.Equal(t, "plain", xmlEscape("plain"))
}
