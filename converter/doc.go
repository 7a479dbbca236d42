// Package converter turns raw MVG messages into the incident records the
// pipeline emits.
//
// The package provides the per-message transformations:
//   - type filtering (FilterByType)
//   - HTML title/description normalization
//   - timestamp display formatting
//   - order-preserving line deduplication (DedupeLines)
//
// plus the SIRI-SX rendering of the same data (BuildSituationExchange).
//
// Per-field problems never abort a conversion. They are collected by a
// WarningAggregator and logged once, consolidated, so a noisy feed cannot
// flood the status stream.
//
// Converter instances are NOT thread-safe. Each request should use its own
// converter instance; they are cheap to create.
package converter
