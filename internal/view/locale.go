package view

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Timestamp layouts mirroring how browsers render Date.toLocaleString for the
// supported locales. The first entry is the fallback.
var (
	supportedTags = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.BrazilianPortuguese,
		language.Japanese,
	}
	timestampLayouts = []string{
		"1/2/2006, 3:04:05 PM",
		"02/01/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"02/01/2006, 15:04:05",
		"2006/1/2 15:04:05",
	}
	tagMatcher = language.NewMatcher(supportedTags)
)

// Locale selects a timestamp layout.
type Locale struct {
	tag    language.Tag
	layout string
}

// DefaultLocale is used when the request states no usable preference.
func DefaultLocale() Locale {
	return Locale{tag: supportedTags[0], layout: timestampLayouts[0]}
}

// ResolveLocale matches an Accept-Language header against the supported locales.
func ResolveLocale(acceptLanguage string) Locale {
	accept := strings.TrimSpace(acceptLanguage)
	if accept == "" {
		return DefaultLocale()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLocale()
	}
	_, idx, conf := tagMatcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale()
	}
	return Locale{tag: supportedTags[idx], layout: timestampLayouts[idx]}
}

// Tag returns the matched language tag.
func (l Locale) Tag() language.Tag { return l.tag }

// FormatTimestamp renders t in loc using the locale's layout.
func (l Locale) FormatTimestamp(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(l.layout)
}
