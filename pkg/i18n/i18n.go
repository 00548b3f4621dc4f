// Package i18n resolves the response locale for a request from the
// Accept-Language header against the set of locales content is
// translated into.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Matcher negotiates a supported locale for incoming requests.
type Matcher struct {
	defaultLocale string
	supported     []string
	matcher       language.Matcher
}

// NewMatcher builds a Matcher from the configured locale list. The default
// locale is always supported and wins when negotiation fails.
func NewMatcher(defaultLocale string, supported []string) *Matcher {
	defaultLocale = normalize(defaultLocale)
	if defaultLocale == "" {
		defaultLocale = "ru"
	}

	locales := []string{defaultLocale}
	for _, loc := range supported {
		loc = normalize(loc)
		if loc == "" || loc == defaultLocale {
			continue
		}
		locales = append(locales, loc)
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	return &Matcher{
		defaultLocale: defaultLocale,
		supported:     locales,
		matcher:       language.NewMatcher(tags),
	}
}

// DefaultLocale returns the fallback locale.
func (m *Matcher) DefaultLocale() string {
	return m.defaultLocale
}

// Supported returns the negotiable locales, default first.
func (m *Matcher) Supported() []string {
	return m.supported
}

// IsSupported reports whether the exact locale is negotiable.
func (m *Matcher) IsSupported(locale string) bool {
	locale = normalize(locale)
	for _, loc := range m.supported {
		if loc == locale {
			return true
		}
	}
	return false
}

// Negotiate picks the best supported locale for an Accept-Language header.
// Malformed or empty headers fall back to the default locale.
func (m *Matcher) Negotiate(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return m.defaultLocale
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return m.defaultLocale
	}
	_, index, confidence := m.matcher.Match(desired...)
	if confidence == language.No {
		return m.defaultLocale
	}
	if index < 0 || index >= len(m.supported) {
		return m.defaultLocale
	}
	return m.supported[index]
}

func normalize(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}
