package htmltext

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ruleWidth is the width of the horizontal rule emitted for <hr>.
const ruleWidth = 50

// blankRuns matches three or more newlines, ignoring horizontal whitespace
// between them.
var blankRuns = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)

// Normalize converts an HTML fragment to plain text. Plain input comes back
// unchanged apart from whitespace tidying, so the function is idempotent.
func Normalize(fragment string) string {
	if fragment == "" {
		return fragment
	}
	if !strings.ContainsAny(fragment, "<&") {
		return tidy(fragment)
	}

	var b strings.Builder
	b.Grow(len(fragment))

	// hrefs tracks open <a> tags so the URL can follow the link text.
	var hrefs []string

	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF ends the fragment; any other error means the rest is
			// unparseable and what was written so far is the best effort.
			break
		}
		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			hrefs = openTag(&b, string(name), hasAttr, z, hrefs)
			if tt == html.SelfClosingTagToken {
				hrefs = closeTag(&b, string(name), hrefs)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			hrefs = closeTag(&b, string(name), hrefs)
		}
	}
	return tidy(b.String())
}

func openTag(b *strings.Builder, name string, hasAttr bool, z *html.Tokenizer, hrefs []string) []string {
	switch name {
	case "br":
		b.WriteByte('\n')
	case "p", "div", "ul", "ol":
		b.WriteByte('\n')
	case "hr":
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", ruleWidth))
		b.WriteByte('\n')
	case "li":
		b.WriteString("- ")
	case "strong", "b":
		b.WriteString("**")
	case "em", "i":
		b.WriteByte('*')
	case "a":
		hrefs = append(hrefs, tagHref(hasAttr, z))
	}
	return hrefs
}

func closeTag(b *strings.Builder, name string, hrefs []string) []string {
	switch name {
	case "p", "div", "ul", "ol", "li":
		b.WriteByte('\n')
	case "strong", "b":
		b.WriteString("**")
	case "em", "i":
		b.WriteByte('*')
	case "a":
		if len(hrefs) == 0 {
			break
		}
		href := hrefs[len(hrefs)-1]
		hrefs = hrefs[:len(hrefs)-1]
		if href != "" {
			b.WriteString(" (")
			b.WriteString(href)
			b.WriteByte(')')
		}
	}
	return hrefs
}

func tagHref(hasAttr bool, z *html.Tokenizer) string {
	if !hasAttr {
		return ""
	}
	for {
		key, val, more := z.TagAttr()
		if string(key) == "href" {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}

// tidy collapses runs of blank lines down to one and strips surrounding
// whitespace.
func tidy(s string) string {
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
