// Package pipeline runs one fetch-to-output cycle as a small state
// machine. A run walks from idle through done; any failure parks the
// pipeline in the failed state and surfaces the wrapped error.
package pipeline
