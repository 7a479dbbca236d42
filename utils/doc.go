// Package utils provides internal utility functions for the mvg-incidents
// pipeline. This package is not intended to be imported by external code.
//
// It contains:
//   - Display formatting for the API's epoch-milliseconds timestamps
//   - ISO8601 helpers for the SIRI and GTFS-RT surfaces
//   - Timezone resolution with an embedded tzdata fallback
package utils
