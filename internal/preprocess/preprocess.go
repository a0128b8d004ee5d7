// Package preprocess normalizes raw page text extracted from tender PDFs
// before it is chunked and indexed. The cleanup targets artifacts of PDF
// text extraction: hard line wraps, hyphenated word breaks and repeating
// header/footer noise.
package preprocess

import (
	"regexp"
	"strings"
)

var (
	newlineRuns    = regexp.MustCompile(`\n+`)
	whitespaceRuns = regexp.MustCompile(`\s+`)

	// Page markers and the boilerplate document header repeated on every page.
	pageMarker   = regexp.MustCompile(`Page \d+`)
	headerNoise  = regexp.MustCompile(`Ausschreibungsdokument.*`)

	// A lowercase letter, a hyphen, whitespace, another lowercase letter is a
	// word wrapped across lines. The looser second pattern also catches
	// German compound words split at the line break.
	hyphenBreak      = regexp.MustCompile(`([a-z])-\s+([a-z])`)
	looseHyphenBreak = regexp.MustCompile(`(\S)- (\S)`)

	// Line break in the middle of a sentence.
	sentenceBreak = regexp.MustCompile(`([a-zA-Z])\s*\n\s*([a-zA-Z])`)
)

// Normalize cleans a single page of extracted text. It is a pure function;
// callers that want the intermediate output for inspection persist it
// themselves.
func Normalize(raw string) string {
	text := newlineRuns.ReplaceAllString(raw, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	text = pageMarker.ReplaceAllString(text, "")
	text = headerNoise.ReplaceAllString(text, "")

	text = hyphenBreak.ReplaceAllString(text, "$1$2")
	text = looseHyphenBreak.ReplaceAllString(text, "$1$2")
	text = sentenceBreak.ReplaceAllString(text, "$1 $2")

	return text
}
