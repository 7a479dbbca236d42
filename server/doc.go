// Package server exposes the incident pipeline over HTTP.
//
// The routes mirror the CLI output formats: the plain incident list, the
// SIRI-SX response in JSON and XML, and the GTFS-RT service alerts feed in
// wire format and protojson. Every request performs one fetch against the
// upstream API; nothing is cached between requests, so responses are as
// fresh as the upstream allows. Upstream failures surface as 502 with an
// error body.
package server
