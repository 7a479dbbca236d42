package siri

// SituationExchangeDelivery represents the SIRI-SX delivery structure
// Based on SIRI-SX specification v1.1 (Entur Nordic Profile)
// Spec: https://enturas.atlassian.net/wiki/spaces/PUBLIC/pages/637370605/SIRI-SX
type SituationExchangeDelivery struct {
	Version           string               `json:"version"`
	ResponseTimestamp string               `json:"ResponseTimestamp"`
	Situations        []PtSituationElement `json:"Situations"`
}

// PtSituationElement represents a single public transport situation (alert/disruption)
// Cardinality: 1:* per SituationExchangeDelivery
type PtSituationElement struct {
	CreationTime    string                  `json:"CreationTime,omitempty"`
	ParticipantRef  string                  `json:"ParticipantRef"`
	SituationNumber string                  `json:"SituationNumber"`
	Source          *SituationSource        `json:"Source,omitempty"`
	Progress        string                  `json:"Progress"` // open|closed
	ValidityPeriod  []ValidityPeriod        `json:"ValidityPeriod,omitempty"`
	Severity        string                  `json:"Severity,omitempty"`
	ReportType      string                  `json:"ReportType"` // general|incident
	Summary         []NaturalLanguageString `json:"Summary,omitempty"`
	Description     []NaturalLanguageString `json:"Description,omitempty"`
	Affects         *Affects                `json:"Affects,omitempty"`
	InfoLinks       []InfoLink              `json:"InfoLinks,omitempty"`
}

// SituationSource represents the source of the situation message
type SituationSource struct {
	SourceType string `json:"SourceType,omitempty"`
}

// ValidityPeriod represents a time period with start and optional end time
type ValidityPeriod struct {
	StartTime string `json:"StartTime,omitempty"`
	EndTime   string `json:"EndTime,omitempty"`
}

// NaturalLanguageString represents text with a language attribute
type NaturalLanguageString struct {
	Lang string `json:"lang,omitempty"`
	Text string `json:"text"`
}

// InfoLink represents a URL with an optional label
type InfoLink struct {
	Uri   string                  `json:"Uri"`
	Label []NaturalLanguageString `json:"Label,omitempty"`
}

// Affects represents the scope of the situation
type Affects struct {
	Networks *AffectedNetworks `json:"Networks,omitempty"`
}

// AffectedNetworks represents affected networks
type AffectedNetworks struct {
	AffectedNetwork []AffectedNetwork `json:"AffectedNetwork"`
}

// AffectedNetwork represents an affected network
type AffectedNetwork struct {
	NetworkRef    string         `json:"NetworkRef,omitempty"`
	AffectedLines *AffectedLines `json:"AffectedLine,omitempty"`
}

// AffectedLines represents affected lines
type AffectedLines struct {
	AffectedLine []AffectedLine `json:"AffectedLine"`
}

// AffectedLine represents an affected line/route
type AffectedLine struct {
	LineRef  string                  `json:"LineRef"`
	LineName []NaturalLanguageString `json:"LineName,omitempty"`
}
