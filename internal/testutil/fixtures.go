// Package testutil provides shared payload fixtures for tests across
// packages. The sample payload mirrors the live endpoint: a mix of
// incident and info messages with HTML text, duplicated lines, and epoch
// millisecond timestamps.
package testutil

// Timestamps used in SamplePayload, for assertions against formatted
// output. 1704103245000 is 01.01.2024 10:20 Europe/Berlin, 1704110445000
// is 01.01.2024 12:20.
const (
	SampleValidFromMillis int64 = 1704103245000
	SampleValidToMillis   int64 = 1704110445000
)

// SamplePayload is a realistic messages response: two incidents and one
// info message. The first incident repeats the U3 line and carries HTML
// markup in the description.
const SamplePayload = `[
  {
    "title": "St&ouml;rung <strong>U3</strong>",
    "description": "<p>Wegen einer Signalst&ouml;rung kommt es zu Versp&auml;tungen.</p><p>Bitte beachten Sie die Anzeigen.</p>",
    "type": "INCIDENT",
    "provider": "MVG",
    "publication": 1704103245000,
    "validFrom": 1704103245000,
    "validTo": 1704110445000,
    "lines": [
      {"label": "U3", "transportType": "UBAHN", "network": "swm"},
      {"label": "U3", "transportType": "UBAHN", "network": "swm"},
      {"label": "U6", "transportType": "UBAHN", "network": "swm"}
    ],
    "links": [
      {"name": "Weitere Informationen", "href": "https://www.mvg.de/dienste/betriebsaenderungen.html"}
    ]
  },
  {
    "title": "Aufzug au&szlig;er Betrieb",
    "description": "Der Aufzug am Hauptbahnhof ist defekt.<br>Techniker sind verst&auml;ndigt.",
    "type": "INCIDENT",
    "provider": "MVG",
    "publication": 1704103245000,
    "validFrom": 1704103245000,
    "lines": [
      {"label": "S1", "transportType": "SBAHN"},
      {"label": "19", "transportType": "TRAM"}
    ]
  },
  {
    "title": "Fahrplan&auml;nderung Bus 58",
    "description": "Ab Montag gilt ein neuer Fahrplan.",
    "type": "INFO",
    "provider": "MVG",
    "publication": 1704103245000,
    "lines": [
      {"label": "58", "transportType": "BUS"}
    ]
  }
]`
