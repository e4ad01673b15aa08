package i18n

import "github.com/de-tools/team-migration/pkg/textfmt"

// Strings is a loaded translation bundle.
type Strings struct {
	locale string
	values map[string]string
}

func NewStrings(locale string, values map[string]string) *Strings {
	if values == nil {
		values = map[string]string{}
	}
	return &Strings{locale: locale, values: values}
}

func (s *Strings) Locale() string {
	return s.locale
}

// Get returns the translation for key, or "" when the bundle lacks it.
func (s *Strings) Get(key string) string {
	if s == nil {
		return ""
	}
	return s.values[key]
}

// Template fills the {N} placeholders of the translation for key.
func (s *Strings) Template(key string, values ...any) string {
	return textfmt.Format(s.Get(key), values...)
}
