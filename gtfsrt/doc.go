// Package gtfsrt builds GTFS-Realtime ServiceAlerts feeds from decoded
// messages.
//
// The feed is a full-dataset snapshot: one FeedEntity per message, with
// the affected lines mapped to route selectors. Marshal produces the
// protobuf wire format, MarshalJSON the protojson rendering for
// debugging and browser consumption.
package gtfsrt
