// Package siri defines SIRI (Service Interface for Real-time Information) data types.
//
// SIRI is a European standard (CEN/TS 15531) for real-time public transport
// information. This package contains Go structs for the one module the
// incident pipeline publishes:
//
//   - SituationExchangeDelivery (SX): service alerts and disruptions
//
// plus the ServiceDelivery envelope the delivery is wrapped in.
package siri
