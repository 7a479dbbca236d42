package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/mvg-incidents/internal/testutil"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
)

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func TestTransformSamplePayload(t *testing.T) {
	t.Parallel()

	msgs, skipped, err := mvg.DecodeMessages([]byte(testutil.SamplePayload))
	require.NoError(t, err)
	require.Zero(t, skipped)
	require.Len(t, msgs, 3)

	incidents := New(berlin(t)).Transform(FilterByType(msgs, mvg.MessageTypeIncident))
	require.Len(t, incidents, 2)

	first := incidents[0]
	assert.Equal(t, "Störung **U3**", first.Title)
	assert.Equal(t, "Wegen einer Signalstörung kommt es zu Verspätungen.\n\nBitte beachten Sie die Anzeigen.", first.Description)
	assert.Equal(t, "INCIDENT", first.Type)
	assert.Equal(t, "MVG", first.Provider)
	assert.Equal(t, "01.01.2024 10:20", first.Publication)
	assert.Equal(t, "01.01.2024 10:20", first.ValidFrom)
	assert.Equal(t, "01.01.2024 12:20", first.ValidTo)
	require.Len(t, first.Lines, 2)
	assert.Equal(t, "U3", first.Lines[0].Label)
	assert.Equal(t, "U6", first.Lines[1].Label)
	require.Len(t, first.Links, 1)
	assert.Equal(t, "https://www.mvg.de/dienste/betriebsaenderungen.html", first.Links[0].Href)

	second := incidents[1]
	assert.Equal(t, "Aufzug außer Betrieb", second.Title)
	assert.Equal(t, "Der Aufzug am Hauptbahnhof ist defekt.\nTechniker sind verständigt.", second.Description)
	assert.Empty(t, second.ValidTo)
	assert.Empty(t, second.Links)
}

func TestTransformCleanInputProducesNoWarnings(t *testing.T) {
	t.Parallel()

	msgs, _, err := mvg.DecodeMessages([]byte(testutil.SamplePayload))
	require.NoError(t, err)

	c := New(berlin(t))
	c.Transform(FilterByType(msgs, mvg.MessageTypeIncident))

	for _, wt := range []string{WarningNoTitle, WarningNoDescription, WarningBadTimestamp, WarningLineNoLabel} {
		assert.Zero(t, c.Warnings().Count(wt), wt)
	}
}

func TestTransformDegradesFieldProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     mvg.Message
		warning string
		check   func(t *testing.T, inc Incident)
	}{
		{
			name:    "missing title",
			msg:     mvg.Message{Description: "ok", Type: "INCIDENT"},
			warning: WarningNoTitle,
			check: func(t *testing.T, inc Incident) {
				assert.Empty(t, inc.Title)
			},
		},
		{
			name:    "title normalizes to nothing",
			msg:     mvg.Message{Title: "<p>   </p>", Description: "ok", Type: "INCIDENT"},
			warning: WarningNoTitle,
			check: func(t *testing.T, inc Incident) {
				assert.Empty(t, inc.Title)
			},
		},
		{
			name:    "missing description",
			msg:     mvg.Message{Title: "U3", Type: "INCIDENT"},
			warning: WarningNoDescription,
			check: func(t *testing.T, inc Incident) {
				assert.Empty(t, inc.Description)
			},
		},
		{
			name:    "unusable timestamp",
			msg:     mvg.Message{Title: "U3", Description: "ok", Type: "INCIDENT", ValidFrom: mvg.Epoch(-1)},
			warning: WarningBadTimestamp,
			check: func(t *testing.T, inc Incident) {
				assert.Empty(t, inc.ValidFrom)
			},
		},
		{
			name:    "line without label",
			msg:     mvg.Message{Title: "U3", Description: "ok", Type: "INCIDENT", Lines: []mvg.Line{{TransportType: "BUS"}}},
			warning: WarningLineNoLabel,
			check: func(t *testing.T, inc Incident) {
				require.Len(t, inc.Lines, 1)
				assert.Empty(t, inc.Lines[0].Label)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := New(berlin(t))
			incidents := c.Transform([]mvg.Message{tt.msg})
			require.Len(t, incidents, 1, "field problems must never drop the record")
			tt.check(t, incidents[0])
			assert.Equal(t, 1, c.Warnings().Count(tt.warning))
		})
	}
}

func TestTransformAbsentTimestampsStaySilent(t *testing.T) {
	t.Parallel()

	c := New(berlin(t))
	incidents := c.Transform([]mvg.Message{{Title: "U3", Description: "ok", Type: "INCIDENT"}})

	require.Len(t, incidents, 1)
	assert.Empty(t, incidents[0].Publication)
	assert.Empty(t, incidents[0].ValidFrom)
	assert.Empty(t, incidents[0].ValidTo)
	assert.Zero(t, c.Warnings().Count(WarningBadTimestamp))
}

func TestTransformDurations(t *testing.T) {
	t.Parallel()

	msg := mvg.Message{
		Title:       "U3",
		Description: "ok",
		Type:        "INCIDENT",
		PublicationDuration: &mvg.Duration{
			From: mvg.Epoch(testutil.SampleValidFromMillis),
			To:   mvg.Epoch(testutil.SampleValidToMillis),
		},
		IncidentDurations: []mvg.Duration{
			{From: mvg.Epoch(testutil.SampleValidFromMillis)},
		},
	}

	incidents := New(berlin(t)).Transform([]mvg.Message{msg})
	require.Len(t, incidents, 1)

	inc := incidents[0]
	require.NotNil(t, inc.PublicationDuration)
	assert.Equal(t, "01.01.2024 10:20", inc.PublicationDuration.From)
	assert.Equal(t, "01.01.2024 12:20", inc.PublicationDuration.To)
	require.Len(t, inc.IncidentDurations, 1)
	assert.Equal(t, "01.01.2024 10:20", inc.IncidentDurations[0].From)
	assert.Empty(t, inc.IncidentDurations[0].To)
}

func TestMessageRef(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  mvg.Message
		want string
	}{
		{
			name: "first line label wins",
			msg:  mvg.Message{Title: "Störung", Lines: []mvg.Line{{Label: "U3"}, {Label: "U6"}}},
			want: "U3",
		},
		{
			name: "title prefix without lines",
			msg:  mvg.Message{Title: "Störung"},
			want: "Störung",
		},
		{
			name: "long title truncated rune safe",
			msg:  mvg.Message{Title: "Größere Störung im gesamten Netz wegen außergewöhnlicher Umstände"},
			want: "Größere Störung im gesamten Netz wegen a",
		},
		{
			name: "nothing usable",
			msg:  mvg.Message{},
			want: "(untitled)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, messageRef(tt.msg))
		})
	}
}
