package mvg

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageTypeIncident is the type tag MVG uses for disruption messages.
const MessageTypeIncident = "INCIDENT"

// epochInvalid marks a timestamp that was present but unusable. Zero means
// the field was absent.
const epochInvalid = -1

// Epoch is a point in time as served by the API: epoch milliseconds as a
// JSON number, though ISO8601 strings show up in older payload dumps.
// Unparseable values decode to an invalid marker instead of failing the
// record; the converter substitutes the placeholder and warns.
type Epoch int64

// Millis returns the epoch milliseconds, 0 when absent, negative when the
// raw value was unusable.
func (e Epoch) Millis() int64 { return int64(e) }

func (e *Epoch) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = 0
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err == nil {
		if ms < 0 {
			*e = epochInvalid
			return nil
		}
		*e = Epoch(ms)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*e = epochInvalid
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		*e = epochInvalid
		return nil
	}
	*e = Epoch(t.UnixMilli())
	return nil
}

// Line identifies a transit line affected by a message.
type Line struct {
	Label         string `json:"label"`
	TransportType string `json:"transportType,omitempty"`
	Network       string `json:"network,omitempty"`
	DivaID        string `json:"divaId,omitempty"`
	Sev           bool   `json:"sev,omitempty"`
}

// UnmarshalJSON accepts the regular line object as well as the bare string
// form older payloads use for lines.
func (l *Line) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*l = Line{Label: label}
		return nil
	}
	type plain Line
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Line(p)
	return nil
}

// Duration is a from/to window in epoch milliseconds.
type Duration struct {
	From Epoch `json:"from,omitempty"`
	To   Epoch `json:"to,omitempty"`
}

// Link is a related URL attached to a message.
type Link struct {
	Name string `json:"name,omitempty"`
	Href string `json:"href,omitempty"`
}

// Message is one record from the messages endpoint, as served. Title and
// Description may contain HTML.
type Message struct {
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Type                string     `json:"type"`
	Provider            string     `json:"provider,omitempty"`
	Lines               []Line     `json:"lines,omitempty"`
	Links               []Link     `json:"links,omitempty"`
	Publication         Epoch      `json:"publication,omitempty"`
	ValidFrom           Epoch      `json:"validFrom,omitempty"`
	ValidTo             Epoch      `json:"validTo,omitempty"`
	PublicationDuration *Duration  `json:"publicationDuration,omitempty"`
	IncidentDurations   []Duration `json:"incidentDurations,omitempty"`
}

// DecodeMessages decodes a messages payload. It returns the decoded
// messages and the number of records that were skipped because they did
// not decode. A payload that is not valid JSON at all is a hard error.
func DecodeMessages(body []byte) ([]Message, int, error) {
	records, err := splitRecords(body)
	if err != nil {
		return nil, 0, err
	}

	msgs := make([]Message, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var m Message
		if err := json.Unmarshal(rec, &m); err != nil {
			skipped++
			continue
		}
		msgs = append(msgs, m)
	}
	return msgs, skipped, nil
}

// splitRecords isolates the message records from whichever payload shape
// the endpoint served: a bare array, an object wrapping the array under a
// known key, or a single bare message.
func splitRecords(body []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}
	for _, key := range []string{"messages", "data", "items", "results"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}
	// An object carrying a type field is a single bare message.
	if _, ok := envelope["type"]; ok {
		return []json.RawMessage{json.RawMessage(body)}, nil
	}
	return nil, fmt.Errorf("decode response body: no message array found")
}
