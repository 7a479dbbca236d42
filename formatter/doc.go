// Package formatter serializes output documents and wraps SIRI deliveries
// in their response envelope.
//
// JSON output keeps HTML characters unescaped so normalized German text
// and URLs stay readable. The SIRI response additionally renders as XML
// for consumers that expect the schema's native form.
package formatter
