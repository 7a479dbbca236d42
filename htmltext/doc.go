// Package htmltext converts the HTML fragments embedded in MVG messages
// into plain text that reads well in a terminal or a JSON string.
//
// Block-level tags become line breaks, list items become "- " bullets,
// emphasis becomes markdown-style markers, links keep their text followed
// by the URL in parentheses, and all entities are decoded. Everything else
// is stripped. Malformed markup never fails; the tokenizer extracts what
// it can.
package htmltext
