// Package mvg fetches and decodes disruption messages from the MVG
// (Münchner Verkehrsgesellschaft) public messages endpoint.
//
// The endpoint serves a bare JSON array of messages. Wrapped object
// responses and single bare messages are accepted too, since the API has
// changed shape between versions. Individual records that fail to decode
// are skipped rather than failing the whole payload.
package mvg
