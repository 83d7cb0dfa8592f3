// Package i18n resolves the request language and formats the few strings
// that vary by locale: result counts and avatar initials.
package i18n

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const keyResultCount = "dashboard.result_count"

var supported = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
}

var matcher = language.NewMatcher(supported)

func init() {
	for _, tag := range supported {
		_ = message.Set(tag, keyResultCount, plural.Selectf(1, "%d",
			"=0", "No applicants found",
			"=1", "1 applicant found",
			"other", "%d applicants found",
		))
	}
}

// Default returns the fallback language tag.
func Default() language.Tag {
	return supported[0]
}

// ResolveTag picks the best supported tag for the request's Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[idx]
}

// ResultCount renders a localized applicant count, e.g. "1,204 applicants found".
func ResultCount(tag language.Tag, n int) string {
	return message.NewPrinter(tag).Sprintf(keyResultCount, n)
}

// Initial returns the upper-cased first letter of name, or "?" when empty.
func Initial(tag language.Tag, name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(trimmed)
	return cases.Upper(tag).String(string(r))
}
