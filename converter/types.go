package converter

import "github.com/theoremus-urban-solutions/mvg-incidents/mvg"

// Incident is one output record: a filtered message with plain-text fields,
// display-formatted timestamps, and deduplicated lines.
type Incident struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	Provider            string     `json:"provider,omitempty"`
	Lines               []mvg.Line `json:"lines"`
	Links               []mvg.Link `json:"links,omitempty"`
	Publication         string     `json:"publication,omitempty"`
	ValidFrom           string     `json:"validFrom,omitempty"`
	ValidTo             string     `json:"validTo,omitempty"`
	PublicationDuration *Window    `json:"publicationDuration,omitempty"`
	IncidentDurations   []Window   `json:"incidentDurations,omitempty"`
}

// Window is a from/to validity window in display format.
type Window struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}
