package gtfsrt

import (
	"fmt"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/theoremus-urban-solutions/mvg-incidents/converter"
	"github.com/theoremus-urban-solutions/mvg-incidents/htmltext"
	"github.com/theoremus-urban-solutions/mvg-incidents/mvg"
)

// BuildServiceAlerts maps messages onto a GTFS-RT service alerts feed.
// Text fields are normalized to plain text, duplicate lines collapse to a
// single route selector, and validity epochs become the active period.
func BuildServiceAlerts(msgs []mvg.Message) *gtfsrtpb.FeedMessage {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(time.Now().Unix())),
		},
		Entity: make([]*gtfsrtpb.FeedEntity, 0, len(msgs)),
	}

	for i, m := range msgs {
		alert := &gtfsrtpb.Alert{
			Cause:  gtfsrtpb.Alert_UNKNOWN_CAUSE.Enum(),
			Effect: mapMessageTypeToEffect(m.Type).Enum(),
		}
		if title := htmltext.Normalize(m.Title); title != "" {
			alert.HeaderText = translatedString(title)
		}
		if description := htmltext.Normalize(m.Description); description != "" {
			alert.DescriptionText = translatedString(description)
		}
		if len(m.Links) > 0 && m.Links[0].Href != "" {
			alert.Url = translatedString(m.Links[0].Href)
		}

		var tr gtfsrtpb.TimeRange
		if ms := m.ValidFrom.Millis(); ms > 0 {
			tr.Start = proto.Uint64(uint64(ms / 1000))
		}
		if ms := m.ValidTo.Millis(); ms > 0 {
			tr.End = proto.Uint64(uint64(ms / 1000))
		}
		if tr.Start != nil || tr.End != nil {
			alert.ActivePeriod = []*gtfsrtpb.TimeRange{&tr}
		}

		for _, l := range converter.DedupeLines(m.Lines) {
			if l.Label == "" {
				continue
			}
			sel := &gtfsrtpb.EntitySelector{RouteId: proto.String(l.Label)}
			if rt, ok := mapTransportTypeToRouteType(l.TransportType); ok {
				sel.RouteType = proto.Int32(rt)
			}
			alert.InformedEntity = append(alert.InformedEntity, sel)
		}

		fm.Entity = append(fm.Entity, &gtfsrtpb.FeedEntity{
			Id:    proto.String(fmt.Sprintf("incident-%d", i+1)),
			Alert: alert,
		})
	}
	return fm
}

// Marshal serializes the feed to protobuf wire format
func Marshal(fm *gtfsrtpb.FeedMessage) ([]byte, error) {
	b, err := proto.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal service alerts feed: %w", err)
	}
	return b, nil
}

// MarshalJSON serializes the feed with protojson, indented for reading
func MarshalJSON(fm *gtfsrtpb.FeedMessage) ([]byte, error) {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshal service alerts feed: %w", err)
	}
	return b, nil
}

func translatedString(text string) *gtfsrtpb.TranslatedString {
	return &gtfsrtpb.TranslatedString{
		Translation: []*gtfsrtpb.TranslatedString_Translation{
			{Text: proto.String(text), Language: proto.String("de")},
		},
	}
}

// mapMessageTypeToEffect maps an upstream message type to a GTFS-RT Effect
func mapMessageTypeToEffect(messageType string) gtfsrtpb.Alert_Effect {
	switch messageType {
	case mvg.MessageTypeIncident:
		return gtfsrtpb.Alert_OTHER_EFFECT
	case "SCHEDULE_CHANGE", "PLANNED":
		return gtfsrtpb.Alert_MODIFIED_SERVICE
	default:
		return gtfsrtpb.Alert_UNKNOWN_EFFECT
	}
}

// mapTransportTypeToRouteType maps an upstream transport type to a GTFS
// route_type. Unknown transport types leave the selector without a type.
func mapTransportTypeToRouteType(transportType string) (int32, bool) {
	switch transportType {
	case "TRAM":
		return 0, true
	case "UBAHN":
		return 1, true
	case "SBAHN", "BAHN":
		return 2, true
	case "BUS", "REGIONAL_BUS":
		return 3, true
	case "SCHIFF":
		return 4, true
	default:
		return 0, false
	}
}
