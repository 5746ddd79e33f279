package export

import (
	"net/url"
	"regexp"
	"strings"
)

const docCreateBase = "https://docs.google.com/document/create"

var (
	mdLink     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	mdHeading  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	mdEmphasis = regexp.MustCompile(`[*_]{1,3}([^*_]+)[*_]{1,3}`)
	mdCode     = regexp.MustCompile("`+")
)

// StripMarkdown reduces markdown to plain text for use as a query
// parameter: links keep their text, headings and emphasis markers drop.
func StripMarkdown(s string) string {
	s = mdLink.ReplaceAllString(s, "$1")
	s = mdHeading.ReplaceAllString(s, "")
	s = mdEmphasis.ReplaceAllString(s, "$1")
	s = mdCode.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ArticleDocURL builds the external document-creation URL pre-filled
// with the article title and markup-stripped body. Opening it is a
// navigation side effect; no API call is made.
func ArticleDocURL(title, markdownBody string) string {
	q := url.Values{}
	q.Set("title", title)
	q.Set("body", StripMarkdown(markdownBody))
	return docCreateBase + "?" + q.Encode()
}
